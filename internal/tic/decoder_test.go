package tic

import (
	"bytes"
	"fmt"
	"testing"
)

// testDialect is a tiny standalone dialect used by the core package's own
// tests, independent of the real dialect tables in internal/dialect/*
// (which import this package and would create an import cycle).
var testDialect = &Dialect{
	Name:                    "TEST",
	Sep:                     0x20,
	SupportsEOT:             true,
	TrailingSepCompensation: true,
	Table: Table{
		"ADCO": NewEtiquette(0, "ADCO", TString, UnitNone, false, "adresse du compteur"),
		"BASE": NewEtiquette(1, "BASE", TInt, UnitWh, false, "index option base"),
		"HEX1": NewEtiquette(2, "HEX1", THex, UnitNone, false, "champ hexadécimal"),
		"IGN1": NewEtiquette(3, "IGN1", TIgnore, UnitNone, false, "champ ignoré"),
		"DATE": NewEtiquette(4, "DATE", TString, UnitNone, true, "horodate"),
	},
	ParseHorodate: func(peek []byte) int { return ParseHorodateV02(peek) },
}

// pmeTestDialect mirrors V01PME's defining quirk: its horodate
// ("JJ/MM/AA HH:MM:SS") embeds the dialect's own SP separator between date
// and time. A scanner that located the horodate by splitting the dataset
// on separator bytes would cut it in two; closeDataset must instead
// recognise it positionally via ParseHorodate.
var pmeTestDialect = &Dialect{
	Name:                    "TESTPME",
	Sep:                     0x20,
	SupportsEOT:             true,
	TrailingSepCompensation: true,
	Table: Table{
		"DATE": NewEtiquette(0, "DATE", TString, UnitNone, true, "date et heure courante"),
		"DEBP": NewEtiquette(1, "DEBP", TString, UnitNone, true, "début de pointe mobile"),
	},
	ParseHorodate: ParseHorodateV01PME,
}

// checksum computes the wire checksum byte given core, the dataset bytes
// INCLUDING the trailing separator that precedes the checksum byte
// itself. This mirrors the scanner's own fold (internal/tic/scanner.go,
// closeDataset): with TrailingSepCompensation the trailing separator
// counts, minus one 0x20 of adjustment; without it, the trailing
// separator is excluded from the sum entirely.
func checksum(d *Dialect, core []byte) byte {
	sum := 0
	for _, c := range core {
		sum += int(c)
	}
	if d.TrailingSepCompensation {
		sum -= 0x20
	} else {
		sum -= int(d.Sep)
	}
	return byte((sum & 0x3F) + 0x20)
}

// buildDataset renders one LF...CR dataset: label, optional horodate, data.
func buildDataset(d *Dialect, label string, horodate, data []byte) []byte {
	var core bytes.Buffer
	core.WriteString(label)
	core.WriteByte(d.Sep)
	if horodate != nil {
		core.Write(horodate)
		core.WriteByte(d.Sep)
	}
	core.Write(data)
	core.WriteByte(d.Sep)

	ck := checksum(d, core.Bytes())

	var out bytes.Buffer
	out.WriteByte(lf)
	out.Write(core.Bytes())
	out.WriteByte(ck)
	out.WriteByte(cr)
	return out.Bytes()
}

func buildFrame(d *Dialect, datasets ...[]byte) []byte {
	var out bytes.Buffer
	out.WriteByte(stx)
	for _, ds := range datasets {
		out.Write(ds)
	}
	out.WriteByte(etx)
	return out.Bytes()
}

// recordingSink captures every callback the decoder makes, for assertions.
type recordingSink struct {
	fields   []Field
	frames   int
	frameErr []bool // one entry per FrameSep, true if any FrameErr preceded it
	errThisFrame bool
}

func (s *recordingSink) PrintField(f Field) { s.fields = append(s.fields, f.Clone()) }
func (s *recordingSink) FrameErr()          { s.errThisFrame = true }
func (s *recordingSink) FrameSep() {
	s.frames++
	s.frameErr = append(s.frameErr, s.errThisFrame)
	s.errThisFrame = false
}

func TestDecodeValidFrame(t *testing.T) {
	frame := buildFrame(testDialect,
		buildDataset(testDialect, "ADCO", nil, []byte("012345678901")),
		buildDataset(testDialect, "BASE", nil, []byte("001234567")),
	)

	sink := &recordingSink{}
	dec := NewDecoder(testDialect, sink, nil)
	if err := dec.Run(bytes.NewReader(frame)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(sink.fields))
	}
	if sink.fields[0].Etiq.Label != "ADCO" || string(sink.fields[0].Str) != "012345678901" {
		t.Errorf("ADCO field = %+v", sink.fields[0])
	}
	if sink.fields[1].Etiq.Label != "BASE" || sink.fields[1].Int != 1234567 {
		t.Errorf("BASE field = %+v", sink.fields[1])
	}
	if sink.frames != 1 || sink.frameErr[0] {
		t.Errorf("frame validity = %+v", sink.frameErr)
	}
}

func TestDecodeBadChecksumMarksFrameInvalid(t *testing.T) {
	ds := buildDataset(testDialect, "BASE", nil, []byte("1"))
	ds[len(ds)-2] ^= 0xFF // corrupt the checksum byte
	frame := buildFrame(testDialect, ds)

	sink := &recordingSink{}
	dec := NewDecoder(testDialect, sink, func(error) {})
	if err := dec.Run(bytes.NewReader(frame)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.fields) != 0 {
		t.Fatalf("expected no fields emitted, got %d", len(sink.fields))
	}
	if sink.frames != 1 || !sink.frameErr[0] {
		t.Errorf("expected frame marked invalid, got %+v", sink.frameErr)
	}
}

func TestDecodeIgnoredFieldNeverReachesSink(t *testing.T) {
	frame := buildFrame(testDialect, buildDataset(testDialect, "IGN1", nil, []byte("whatever")))

	sink := &recordingSink{}
	dec := NewDecoder(testDialect, sink, nil)
	if err := dec.Run(bytes.NewReader(frame)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.fields) != 0 {
		t.Fatalf("T_IGN field reached PrintField: %+v", sink.fields)
	}
	if sink.frames != 1 || sink.frameErr[0] {
		t.Errorf("checksum-valid frame with an ignored field should still be valid, got %+v", sink.frameErr)
	}
}

func TestDecodeHorodateOnlyDataset(t *testing.T) {
	frame := buildFrame(testDialect, buildDataset(testDialect, "DATE", []byte(" 230601120000"), nil))

	sink := &recordingSink{}
	dec := NewDecoder(testDialect, sink, nil)
	if err := dec.Run(bytes.NewReader(frame)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(sink.fields))
	}
	f := sink.fields[0]
	if string(f.Horodate) != " 230601120000" || f.DataString() != "" {
		t.Errorf("horodate-only field = %+v", f)
	}
}

func TestDecodeV01PMEHorodateWithEmbeddedSeparator(t *testing.T) {
	frame := buildFrame(pmeTestDialect,
		buildDataset(pmeTestDialect, "DATE", []byte("15/07/21 14:30:12"), nil))

	sink := &recordingSink{}
	dec := NewDecoder(pmeTestDialect, sink, func(err error) { t.Errorf("unexpected diag: %v", err) })
	if err := dec.Run(bytes.NewReader(frame)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(sink.fields))
	}
	f := sink.fields[0]
	if string(f.Horodate) != "15/07/21 14:30:12" || f.DataString() != "" {
		t.Errorf("horodate-only PME field = %+v", f)
	}
	if sink.frames != 1 || sink.frameErr[0] {
		t.Errorf("frame should be valid, got %+v", sink.frameErr)
	}
}

func TestDecodeV01PMEHorodateWithTrailingData(t *testing.T) {
	frame := buildFrame(pmeTestDialect,
		buildDataset(pmeTestDialect, "DEBP", []byte("01/11/23 06:00:00"), []byte("1")))

	sink := &recordingSink{}
	dec := NewDecoder(pmeTestDialect, sink, func(err error) { t.Errorf("unexpected diag: %v", err) })
	if err := dec.Run(bytes.NewReader(frame)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(sink.fields))
	}
	f := sink.fields[0]
	if string(f.Horodate) != "01/11/23 06:00:00" || f.DataString() != "1" {
		t.Errorf("horodate+data PME field = %+v", f)
	}
}

func TestDecodeEOTAbortsV01StyleFrame(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(stx)
	buf.Write(buildDataset(testDialect, "BASE", nil, []byte("1")))
	buf.WriteByte(eot)

	sink := &recordingSink{}
	dec := NewDecoder(testDialect, sink, nil)
	if err := dec.Run(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sink.frames != 1 || !sink.frameErr[0] {
		t.Errorf("EOT-terminated frame should be invalid, got %+v", sink.frameErr)
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("0"), []byte("000000000"), []byte("999999999"), []byte(""),
	}
	for i, data := range payloads {
		t.Run(fmt.Sprintf("payload_%d", i), func(t *testing.T) {
			frame := buildFrame(testDialect, buildDataset(testDialect, "BASE", nil, data))
			sink := &recordingSink{}
			dec := NewDecoder(testDialect, sink, func(err error) { t.Errorf("unexpected diag: %v", err) })
			if err := dec.Run(bytes.NewReader(frame)); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if len(data) > 0 && (sink.frames != 1 || sink.frameErr[0]) {
				t.Errorf("payload %q: frame invalid", data)
			}
		})
	}
}
