// Package udp implements a tic.Sink that dispatches one JSON datagram per
// frame to a fixed UDP peer. The dial-and-send shape is grounded on the
// plexTuner discovery server's net.UDPConn usage, adapted from
// listen-and-reply to dial-and-send.
package udp

import (
	"encoding/json"
	"fmt"
	"log"
	"net"

	"github.com/ticdecoder/tic2json/internal/tic"
)

// Sink collects one frame's fields into a dict-mode payload and sends it
// as a single UDP datagram on FrameSep.
type Sink struct {
	conn   *net.UDPConn
	filter *tic.Filter

	fields map[string]interface{}
	valid  bool
}

// Dial opens a UDP "connection" to addr (host:port). UDP is connectionless;
// net.DialUDP only fixes the peer address for subsequent Write calls.
func Dial(addr string) (*Sink, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("udp sink: resolve %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("udp sink: dial %s: %w", addr, err)
	}
	return &Sink{conn: conn, valid: true, fields: make(map[string]interface{})}, nil
}

// SetFilter installs a tag allow-list; nil clears it.
func (s *Sink) SetFilter(f *tic.Filter) { s.filter = f }

// Close releases the underlying socket.
func (s *Sink) Close() error { return s.conn.Close() }

func (s *Sink) PrintField(f tic.Field) {
	if s.filter != nil && !s.filter.Allows(f.Etiq.ID) {
		return
	}
	if f.Etiq.DataType() == tic.TIgnore {
		return
	}
	if f.IsString {
		s.fields[f.Etiq.Label] = f.DataString()
	} else {
		s.fields[f.Etiq.Label] = f.Int
	}
}

func (s *Sink) FrameErr() { s.valid = false }

func (s *Sink) FrameSep() {
	defer s.reset()

	if s.valid {
		s.fields["_tvalide"] = 1
	} else {
		s.fields["_tvalide"] = 0
	}

	payload, err := json.Marshal(s.fields)
	if err != nil {
		log.Printf("udp sink: marshal frame: %v", err)
		return
	}
	if _, err := s.conn.Write(payload); err != nil {
		log.Printf("udp sink: write to %s: %v", s.conn.RemoteAddr(), err)
	}
}

func (s *Sink) reset() {
	s.fields = make(map[string]interface{})
	s.valid = true
}
