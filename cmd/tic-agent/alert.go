package main

import (
	"log"

	bolt "go.etcd.io/bbolt"

	"github.com/ticdecoder/tic2json/internal/tic"
	"github.com/ticdecoder/tic2json/pkg/alertstore"
)

// alertSink is a tic.Sink that does not print anything: it watches for
// STGE fields, decodes the status register, and logs any transition that
// alertstore has not already recorded. Dropping it into a Fanout alongside
// the real output sinks lets the agent alert without touching how frames
// are published.
type alertSink struct {
	db   *bolt.DB
	prev tic.Stge
	have bool
}

func newAlertSink(db *bolt.DB) *alertSink {
	return &alertSink{db: db}
}

func (a *alertSink) PrintField(f tic.Field) {
	if f.Etiq.Label != "STGE" {
		return
	}
	cur := tic.DecodeStge(uint32(f.Int))
	if !a.have {
		a.prev, a.have = cur, true
		return
	}
	transitions, err := alertstore.Diff(a.db, a.prev, cur)
	if err != nil {
		log.Printf("tic-agent: alert store: %v", err)
	}
	for _, t := range transitions {
		log.Printf("tic-agent: STGE transition: %s -> %s", t.Field, t.Value)
	}
	a.prev = cur
}

func (a *alertSink) FrameSep() {}
func (a *alertSink) FrameErr() {}
