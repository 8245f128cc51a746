package tic

import "bytes"

const (
	stx byte = 0x02
	etx byte = 0x03
	eot byte = 0x04
	lf  byte = 0x0A
	cr  byte = 0x0D
)

// maxDatasetLen bounds the scanner's per-dataset buffer. It is not a frame
// buffer (spec §1 non-goals forbid buffering an entire frame): one dataset
// is LF...CR, and a real TIC dataset never exceeds a few dozen bytes. This
// mirrors the BAREBUILD fixed lexer buffer spec §5 describes, sized at
// "longest token + slack" (128 bytes there; TIC's longest datasets —
// PJOURF+1's 11 eight-byte blocks — run well under that).
const maxDatasetLen = 256

type scanState int

const (
	scanOutside scanState = iota // before STX / after ETX-EOT: discard everything
	scanInFrame                  // inside STX..ETX/EOT, between datasets
	scanInDataset                // between LF and CR, buffering raw bytes
)

// Scanner is the lexical layer of spec §4.1. It is driven one byte at a
// time by Feed and emits tokens through the supplied callback. It keeps no
// state beyond the current dataset's bytes and the active dialect
// reference, so it is cheap to reset and safe to reuse across frames.
type Scanner struct {
	dialect *Dialect
	diag    Diag

	state scanState
	buf   []byte // raw bytes of the current dataset, LF and CR excluded
}

// NewScanner creates a scanner bound to a dialect. diag may be nil.
func NewScanner(d *Dialect, diag Diag) *Scanner {
	return &Scanner{dialect: d, diag: diag, buf: make([]byte, 0, maxDatasetLen)}
}

// Reset returns the scanner to its initial (Outside) state, discarding any
// partially-buffered dataset. The filter preloader (LoadFilter) does not
// go through a Scanner, so no reset is needed after loading a filter.
func (s *Scanner) Reset() {
	s.state = scanOutside
	s.buf = s.buf[:0]
}

func (s *Scanner) diagnose(err error) {
	if s.diag != nil {
		s.diag(err)
	}
}

// Feed processes one input byte, invoking emit zero or more times for the
// tokens it produces. It never returns an error: lexical anomalies are
// reported through the Diag hook supplied to NewScanner and otherwise
// resynchronise the stream (spec §7.1).
func (s *Scanner) Feed(b byte, emit func(Token)) {
	// Control bytes pre-empt whatever state the scanner is in (state table,
	// spec §4.1: "any state: STX/ETX/EOT ... reset to Initial/Outside").
	switch b {
	case stx:
		s.state = scanInFrame
		s.buf = s.buf[:0]
		emit(Token{Kind: TokFrameStart})
		return
	case etx:
		s.state = scanOutside
		emit(Token{Kind: TokFrameEnd})
		return
	case eot:
		if s.dialect.SupportsEOT {
			s.state = scanOutside
			emit(Token{Kind: TokFrameAbort})
			return
		}
		// V02 has no EOT token; treat as a lexical anomaly like any other
		// unrecognised byte.
	}

	switch s.state {
	case scanOutside:
		// discard everything outside a frame.
		return
	case scanInFrame:
		if b == lf {
			s.state = scanInDataset
			s.buf = s.buf[:0]
			emit(Token{Kind: TokDatasetStart})
			return
		}
		s.diagnose(&LexError{State: "Initial", Byte: b})
	case scanInDataset:
		if b == cr {
			s.closeDataset(emit)
			s.state = scanInFrame
			return
		}
		if len(s.buf) >= maxDatasetLen {
			s.diagnose(&DatasetError{Reason: "dataset exceeds maximum length"})
			s.state = scanInFrame
			return
		}
		s.buf = append(s.buf, b)
	}
}

// closeDataset runs at CR: it locates the label and, positionally, an
// optional horodate within the buffered dataset, folds the checksum, and
// emits the LABEL / HORODATE / DATA / DATASET_OK|BAD_CRC token sequence
// (spec §4.1, §4.2).
func (s *Scanner) closeDataset(emit func(Token)) {
	raw := s.buf
	if len(raw) < 2 {
		s.diagnose(&DatasetError{Reason: "dataset too short"})
		return
	}

	trailingSep := raw[len(raw)-2]
	ck := raw[len(raw)-1]
	if trailingSep != s.dialect.Sep {
		s.diagnose(&DatasetError{Reason: "missing separator before checksum"})
		emit(Token{Kind: TokDatasetBadCRC})
		return
	}
	core := raw[:len(raw)-2]

	sum := 0
	for _, c := range core {
		sum += int(c)
	}
	// spec §4.1 "checksum contract": V01/V01PME fold in the trailing
	// separator and then compensate by subtracting 0x20 once; V02 simply
	// never folds it in. Both, in the end, checksum exactly `core`.
	if s.dialect.TrailingSepCompensation {
		sum += int(trailingSep) - 0x20
	}
	computed := byte((sum & 0x3F) + 0x20)

	// The label is found by its first separator, not by splitting the whole
	// dataset on the separator byte: a V01PME horodate ("JJ/MM/AA HH:MM:SS")
	// embeds the dialect's own separator (SP) between date and time, so a
	// blind split would cut it in two. Everything after the label is
	// resolved positionally instead, the way spec §4.1's "Data | HORODATE
	// regex" production describes a fixed-length token match that does not
	// care what separator bytes it straddles.
	label := core
	var rest []byte
	if idx := bytes.IndexByte(core, s.dialect.Sep); idx >= 0 {
		label = core[:idx]
		rest = core[idx+1:]
	}
	if len(label) == 0 {
		s.diagnose(&DatasetError{Reason: "missing label"})
		emit(Token{Kind: TokDatasetBadCRC})
		return
	}

	etiq, ok := s.dialect.lookup(string(label))
	if !ok {
		s.diagnose(&DatasetError{Label: string(label), Reason: "unrecognised label"})
		emit(Token{Kind: TokDatasetBadCRC})
		return
	}

	emit(Token{Kind: TokLabel, Bytes: label, Etiq: etiq})

	var horodate, data []byte
	if etiq.Horodate {
		n := s.dialect.ParseHorodate(rest)
		if n == 0 {
			s.diagnose(&DatasetError{Label: etiq.Label, Reason: "malformed horodate"})
			emit(Token{Kind: TokDatasetBadCRC})
			return
		}
		horodate, rest = rest[:n], rest[n:]
		if len(rest) == 0 || rest[0] != s.dialect.Sep {
			s.diagnose(&DatasetError{Label: etiq.Label, Reason: "missing separator after horodate"})
			emit(Token{Kind: TokDatasetBadCRC})
			return
		}
		emit(Token{Kind: TokHorodate, Bytes: horodate})
		data = rest[1:]
	} else {
		data = rest
	}
	emit(Token{Kind: TokData, Bytes: data, Etiq: etiq})

	if computed == ck {
		emit(Token{Kind: TokDatasetOK})
	} else {
		s.diagnose(&DatasetError{Label: etiq.Label, Reason: "checksum mismatch"})
		emit(Token{Kind: TokDatasetBadCRC})
	}
}
