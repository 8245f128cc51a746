package tic

import "io"

// Decoder is the grammar driver of spec §4.2: it consumes scanner tokens,
// assembles a Field per valid dataset, and drives a Sink. It is
// single-threaded and synchronous (spec §5) — Run never spawns a goroutine
// and never buffers more than one dataset.
//
// The grammar is deliberately left-recursive (spec §4.2 "left-recursive
// grammar choice"): fields are handed to the sink the moment their
// checksum clears, even if a later dataset in the same frame turns out
// malformed. Working memory is therefore O(1) in the number of datasets
// per frame.
type Decoder struct {
	dialect *Dialect
	scanner *Scanner
	sink    Sink

	pending      Etiquette
	havePending  bool
	pendingData  []byte
	pendingHDate []byte
}

// NewDecoder builds a decoder for one dialect/sink pair. diag receives
// non-fatal lexical and dataset diagnostics; it may be nil.
func NewDecoder(d *Dialect, sink Sink, diag Diag) *Decoder {
	dec := &Decoder{dialect: d, sink: sink}
	dec.scanner = NewScanner(d, func(err error) {
		sink.FrameErr()
		if diag != nil {
			diag(err)
		}
	})
	return dec
}

// Feed drives the decoder with a single byte. Exported so callers that
// already read in their own loop (e.g. a non-blocking poll) can push bytes
// one at a time instead of calling Run.
func (d *Decoder) Feed(b byte) {
	d.scanner.Feed(b, d.handleToken)
}

// Run reads from r until EOF, feeding every byte to the decoder. It is the
// only blocking operation in the core (spec §5 "suspension points").
func (d *Decoder) Run(r io.Reader) error {
	var buf [1]byte
	for {
		_, err := r.Read(buf[:])
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		d.Feed(buf[0])
	}
}

func (d *Decoder) handleToken(t Token) {
	switch t.Kind {
	case TokFrameStart:
		d.resetPending()
	case TokFrameEnd:
		d.sink.FrameSep()
		d.resetPending()
	case TokFrameAbort:
		d.sink.FrameErr()
		d.sink.FrameSep()
		d.resetPending()
	case TokDatasetStart:
		d.resetPending()
	case TokLabel:
		d.pending = t.Etiq
		d.havePending = true
	case TokHorodate:
		d.pendingHDate = t.Bytes
	case TokData:
		d.pendingData = t.Bytes
	case TokDatasetOK:
		d.emitPending()
		d.resetPending()
	case TokDatasetBadCRC:
		d.sink.FrameErr()
		d.resetPending()
	}
}

func (d *Decoder) resetPending() {
	d.havePending = false
	d.pending = Etiquette{}
	d.pendingData = nil
	d.pendingHDate = nil
}

func (d *Decoder) emitPending() {
	if !d.havePending {
		return
	}
	if d.pending.DataType() == TIgnore {
		// spec §4.2 field construction: payload discarded, no horodate,
		// print_field never invoked — but the bytes already contributed
		// to the checksum via the scanner.
		return
	}
	etiq, data := d.pending, d.pendingData
	if d.dialect.ReclassifyUnit != nil {
		etiq, data = d.dialect.ReclassifyUnit(etiq, data)
	}
	f, err := makeField(etiq, data, d.pendingHDate)
	if err != nil {
		d.sink.FrameErr()
		return
	}
	d.sink.PrintField(f)
}
