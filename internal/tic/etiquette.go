package tic

// Etiquette is a dialect-local, immutable description of one label: its
// dense tag id (the index used by the filter bitmap), its packed
// unittype octet, the wire label itself, and a human description used by
// "-l" long-form output.
type Etiquette struct {
	ID          uint8
	Label       string
	unittype    unittypeOctet
	Horodate    bool // dataset may carry a horodate for this label
	Description string
}

// NewEtiquette builds a table row. Kept as a constructor (rather than a
// bare struct literal at every call site in the dialect tables) so the
// unittype packing stays in one place.
func NewEtiquette(id uint8, label string, t DataType, u Unit, horodate bool, desc string) Etiquette {
	return Etiquette{
		ID:          id,
		Label:       label,
		unittype:    packUnitType(t, u),
		Horodate:    horodate,
		Description: desc,
	}
}

// DataType returns the payload form this label's data carries.
func (e Etiquette) DataType() DataType { return e.unittype.dataType() }

// Unit returns the physical unit this label's data carries.
func (e Etiquette) Unit() Unit { return e.unittype.unit() }

// WithUnit returns a copy of e with its unit reclassified, leaving the data
// type untouched. Used by the V01PME grammar to reclassify a SANS-unit
// numeric payload to kVA/kW based on a trailing suffix letter (spec §4.3).
func (e Etiquette) WithUnit(u Unit) Etiquette {
	e.unittype = packUnitType(e.unittype.dataType(), u)
	return e
}

// Table is a dialect's static label->Etiquette lookup. It must be an exact
// match table: unless the dialect supplies its own Dialect.Lookup (V01PME
// does, for its parameterised families), the scanner only recognises
// literal label strings present in the active dialect's Table.
type Table map[string]Etiquette

// Lookup performs the scanner's exact-match label recognition.
func (t Table) Lookup(label string) (Etiquette, bool) {
	e, ok := t[label]
	return e, ok
}

// ByID is used by tests asserting label exhaustiveness: every table entry
// must be reachable by both its label string and its dense tag id.
func (t Table) ByID(id uint8) (Etiquette, bool) {
	for _, e := range t {
		if e.ID == id {
			return e, true
		}
	}
	return Etiquette{}, false
}

// MaxID returns the highest tag id in the table, used to size filter
// bitmaps.
func (t Table) MaxID() uint8 {
	var max uint8
	for _, e := range t {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}
