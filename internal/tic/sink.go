package tic

// Sink is the decoder's only external boundary (spec §4.7). The core
// invokes these three callbacks inline, synchronously, from the same
// goroutine that feeds it bytes — there is no queueing and no concurrency
// inside the core (spec §5).
type Sink interface {
	// PrintField is called once per valid dataset that closed its
	// checksum. The Field's byte slices are borrowed and only valid until
	// PrintField returns; call Field.Clone to retain one.
	PrintField(Field)
	// FrameSep is called exactly once per frame, valid or not.
	FrameSep()
	// FrameErr marks the current frame invalid. Idempotent within a frame.
	FrameErr()
}
