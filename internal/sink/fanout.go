// Package sink provides small tic.Sink combinators shared by binaries that
// need more than one downstream destination.
package sink

import "github.com/ticdecoder/tic2json/internal/tic"

// Fanout drives every one of its member sinks from each decoder callback,
// in order. It is itself a tic.Sink, so cmd/tic-agent can hand the decoder
// one fanout instead of juggling multiple sinks in its own dispatch code.
type Fanout []tic.Sink

func (f Fanout) PrintField(field tic.Field) {
	for _, s := range f {
		s.PrintField(field)
	}
}

func (f Fanout) FrameSep() {
	for _, s := range f {
		s.FrameSep()
	}
}

func (f Fanout) FrameErr() {
	for _, s := range f {
		s.FrameErr()
	}
}
