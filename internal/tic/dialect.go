package tic

// Dialect bundles everything that varies between V01 "historique", V02
// "standard", and V01PME: the separator byte, whether EOT terminates a
// frame, the label table, and horodate recognition/parsing. Dialect values
// are read-only after construction and are safe to share between decoder
// instances (spec §5, "globals — dialect tables — are read-only after
// construction").
type Dialect struct {
	Name string

	// Sep is the separator byte between label, horodate, and data fields:
	// HT (0x09) for V02, SP (0x20) for V01/V01PME.
	Sep byte

	// SupportsEOT is true for V01 and V01PME: an EOT byte aborts the frame
	// in place of ETX. V02 has no EOT token.
	SupportsEOT bool

	// TrailingSepCompensation is true for V01/V01PME: the separator byte
	// immediately before the checksum byte is itself covered by the sum,
	// so the scanner must subtract one Sep value before folding (spec
	// §4.1 "checksum contract").
	TrailingSepCompensation bool

	Table Table

	// Lookup resolves a label string to its Etiquette. When nil, Table's
	// exact-match lookup is used directly; V01PME overrides this to also
	// recognise its parameterised label families (DATEPAx, PAx_S, PAx_I)
	// whose wire text varies by a single digit (spec §4.3).
	Lookup func(label string) (Etiquette, bool)

	// ParseHorodate recognises and validates a horodate token at the
	// current read position. It returns the horodate length in bytes, or
	// 0 if the bytes at this position are not a horodate (V01 always
	// returns 0: "historique" carries no horodate at all).
	ParseHorodate func(peek []byte) (length int)

	// ReclassifyUnit lets a dialect inspect a dataset's raw data bytes
	// before they are parsed and adjust the etiquette's unit and/or strip
	// a trailing suffix (the V01PME rule, spec §4.3: a unitless numeric
	// payload whose last byte is 'A' or 'W' is reclassified to kVA/kW and
	// that byte is stripped before integer parsing). Other dialects leave
	// this nil.
	ReclassifyUnit func(etiq Etiquette, data []byte) (Etiquette, []byte)
}

// lookup resolves a label, preferring a dialect-supplied override.
func (d *Dialect) lookup(label string) (Etiquette, bool) {
	if d.Lookup != nil {
		return d.Lookup(label)
	}
	return d.Table.Lookup(label)
}
