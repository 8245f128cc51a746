package tic

import "fmt"

// LexError reports a lexical anomaly: a byte that is not legal in the
// scanner's current state. It is never fatal — the scanner resynchronises
// at the next STX/LF (spec §7.1) — but it does mark the enclosing frame
// invalid, the same way a dataset error does.
type LexError struct {
	State string
	Byte  byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("tic: unexpected byte 0x%02X in state %s", e.Byte, e.State)
}

// DatasetError reports a dataset that was dropped: an unrecognised label,
// an ill-shaped dataset missing separators, or a failed checksum. Scanning
// resumes at the next LF (spec §7.2).
type DatasetError struct {
	Label  string
	Reason string
}

func (e *DatasetError) Error() string {
	if e.Label == "" {
		return "tic: dataset error: " + e.Reason
	}
	return fmt.Sprintf("tic: dataset error (%s): %s", e.Label, e.Reason)
}

// ConfigError is the only fatal error class (spec §7): no dialect selected,
// filter file unreadable, filter file ill-formed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "tic: configuration error: " + e.Reason }

// Diag receives non-fatal decode-time diagnostics (lexical anomalies and
// dataset errors). The core never logs directly; callers (typically a CLI)
// wire Diag to their own logger. A nil Diag silently drops diagnostics.
type Diag func(error)
