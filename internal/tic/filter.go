package tic

import (
	"bufio"
	"io"
	"strings"
)

// Filter is the tag-indexed allow-list bitmap of spec §4.6 (the spec's
// "etiq_en"): one byte per tag id, gating which fields a sink lets
// through. A nil *Filter (or one with no tags enabled) means "no filter
// configured" to callers that choose to treat it that way; LoadFilter
// always returns a Filter with explicit entries for whatever the file
// named.
type Filter struct {
	enabled []bool // indexed by Etiquette.ID
}

// NewFilter creates an empty filter sized for the given dialect table.
func NewFilter(t Table) *Filter {
	return &Filter{enabled: make([]bool, int(t.MaxID())+1)}
}

// Enable marks a tag id as passing the filter.
func (f *Filter) Enable(id uint8) {
	for int(id) >= len(f.enabled) {
		f.enabled = append(f.enabled, false)
	}
	f.enabled[id] = true
}

// Allows reports whether the given tag id passes the filter.
func (f *Filter) Allows(id uint8) bool {
	if f == nil {
		return true
	}
	return int(id) < len(f.enabled) && f.enabled[id]
}

// LoadFilter parses a filter configuration file (spec §4.6): the file must
// begin with the literal line "#ticfilter"; every following
// whitespace-separated token must be a label known to the dialect. Any
// other token aborts with a ConfigError — filter loading is the one place
// outside start-up where the core is allowed to fail fatally (spec §7).
//
// This reuses exactly the dialect's label recognition the live scanner
// uses (Dialect.lookup), the same "reuse the scanner" contract spec §4.6
// describes, without paying for full dataset/checksum framing that a flat
// allow-list file has no use for.
func LoadFilter(d *Dialect, r io.Reader) (*Filter, error) {
	scan := bufio.NewScanner(r)
	scan.Split(bufio.ScanLines)

	if !scan.Scan() {
		return nil, &ConfigError{Reason: "empty filter file"}
	}
	if strings.TrimSpace(scan.Text()) != "#ticfilter" {
		return nil, &ConfigError{Reason: "filter file missing #ticfilter header"}
	}

	f := NewFilter(d.Table)
	for scan.Scan() {
		for _, tok := range strings.Fields(scan.Text()) {
			etiq, ok := d.lookup(tok)
			if !ok {
				return nil, &ConfigError{Reason: "unknown label in filter file: " + tok}
			}
			f.Enable(etiq.ID)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, &ConfigError{Reason: "reading filter file: " + err.Error()}
	}
	return f, nil
}
