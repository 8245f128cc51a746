// Package jsonsink implements the JSON-emitting tic.Sink described in
// spec §6: list or dictionary mode, long-form descriptions and units,
// decoded STGE/day-profile expansion, ISO-8601 horodates, zero-masking,
// filter-bitmap gating, an injected id tag, and frame-skip-N.
package jsonsink

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/ticdecoder/tic2json/internal/tic"
)

// Options configures one Sink instance. The zero value is the plainest
// rendering: list mode, raw horodates, no filtering.
type Options struct {
	Dict          bool // -d: dictionary mode instead of list mode
	LongForm      bool // -l: include description and unit strings
	NewlinePerField bool // -n: one JSON value per line instead of one per frame
	DecodeProfile bool // -p: expand PJOURF+1/PPOINTE into day-profile slots
	ISOHorodate   bool // -r: re-emit horodates in ISO-8601
	DecodeStge    bool // -u: expand STGE into its named sub-fields
	ZeroMask      bool // -z: omit numeric fields whose value is zero
	ID            string // -i: value of the injected "id" tag, "" to omit
	SkipN         int    // -s: emit only every Nth frame, 0/1 means every frame

	Filter *tic.Filter // -e: tag allow-list, nil means unfiltered
}

// fieldOut is the JSON shape of one emitted field (list mode element, or
// dict-mode value).
type fieldOut struct {
	Label    string      `json:"label,omitempty"`
	Data     interface{} `json:"data"`
	Horodate string      `json:"horodate,omitempty"`
	Desc     string      `json:"desc,omitempty"`
	Unit     string      `json:"unit,omitempty"`
	ID       string      `json:"id,omitempty"`
}

// Sink accumulates one frame's worth of fields and flushes them as a
// single JSON value on FrameSep, the way the reference implementation's
// print_field/frame_sep/frame_err triad drives output (spec §4.7).
type Sink struct {
	opt Options
	w   *bufio.Writer

	fields    []fieldOut
	valid     bool
	frameSeen int
}

// New wraps w with the buffering the CLI's stdout writes expect.
func New(w io.Writer, opt Options) *Sink {
	return &Sink{opt: opt, w: bufio.NewWriter(w), valid: true}
}

// Flush flushes any buffered writer output. Callers should defer it.
func (s *Sink) Flush() error { return s.w.Flush() }

func (s *Sink) PrintField(f tic.Field) {
	if s.opt.Filter != nil && !s.opt.Filter.Allows(f.Etiq.ID) {
		return
	}
	if f.Etiq.DataType() == tic.TIgnore {
		return
	}
	if s.opt.ZeroMask && !f.IsString && f.Int == 0 {
		return
	}

	out := fieldOut{Label: f.Etiq.Label, ID: s.opt.ID}
	if s.opt.LongForm {
		out.Desc = f.Etiq.Description
		out.Unit = f.Etiq.Unit().String()
	}

	switch {
	case f.Etiq.DataType() == tic.TProfile:
		out.Data = tic.DecodeDayProfile(string(f.Str))
		if !s.opt.DecodeProfile {
			out.Data = f.DataString()
		}
	case f.Etiq.Label == "STGE" && s.opt.DecodeStge:
		out.Data = tic.DecodeStge(uint32(f.Int))
	case f.IsString:
		out.Data = f.DataString()
	default:
		out.Data = f.Int
	}

	if len(f.Horodate) > 0 {
		out.Horodate = s.renderHorodate(f.Horodate)
	}

	s.fields = append(s.fields, out)
}

func (s *Sink) renderHorodate(raw []byte) string {
	if !s.opt.ISOHorodate {
		return string(raw)
	}
	var (
		iso string
		err error
	)
	switch len(raw) {
	case 13:
		iso, err = tic.FormatISOV02(raw)
	case 17:
		iso, err = tic.FormatISOV01PME(raw)
	default:
		return string(raw)
	}
	if err != nil {
		return string(raw)
	}
	return iso
}

func (s *Sink) FrameErr() { s.valid = false }

func (s *Sink) FrameSep() {
	defer s.reset()

	s.frameSeen++
	n := s.opt.SkipN
	if n > 1 && s.frameSeen%n != 0 {
		return
	}

	if s.opt.Dict {
		s.writeDict()
	} else {
		s.writeList()
	}
}

func (s *Sink) writeList() {
	enc := json.NewEncoder(s.w)
	if s.opt.NewlinePerField {
		for _, f := range s.fields {
			enc.Encode(f)
		}
		return
	}
	enc.Encode(s.fields)
}

func (s *Sink) writeDict() {
	dict := make(map[string]interface{}, len(s.fields)+1)
	for _, f := range s.fields {
		v := map[string]interface{}{"data": f.Data}
		if f.Horodate != "" {
			v["horodate"] = f.Horodate
		}
		if f.Desc != "" {
			v["desc"] = f.Desc
		}
		if f.Unit != "" {
			v["unit"] = f.Unit
		}
		if f.ID != "" {
			v["id"] = f.ID
		}
		dict[f.Label] = v
	}
	if s.valid {
		dict["_tvalide"] = 1
	} else {
		dict["_tvalide"] = 0
	}
	json.NewEncoder(s.w).Encode(dict)
}

func (s *Sink) reset() {
	s.fields = s.fields[:0]
	s.valid = true
}
