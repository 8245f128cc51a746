// Package mqtt implements a tic.Sink that publishes one JSON payload per
// frame to an MQTT broker, and exposes a command topic for remote
// commands. Connect/publish/command-subscribe plumbing is carried over from
// the teacher's pkg/mqtt client: SetAutoReconnect, OnConnectHandler,
// ConnectionLostHandler, and a subscribe-after-connect command topic.
package mqtt

import (
	"encoding/json"
	"log"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/ticdecoder/tic2json/internal/tic"
)

// Config mirrors the teacher's MQTTConfig, trimmed to what a tic frame
// publisher needs: no periodic ticker, since a Sink publishes on every
// frame rather than polling a data source.
type Config struct {
	Broker       string
	ClientID     string
	Topic        string
	CommandTopic string // "" disables the command subscription
}

// ReloadFunc is invoked with the raw payload of a message on CommandTopic.
// The tic-agent binary wires this to its command handler, which reloads
// the filter file (reload_filter) or clears the alert store (clear_alerts).
type ReloadFunc func(payload []byte)

// Sink accumulates one frame's fields and publishes them as a single
// dict-mode JSON message on FrameSep.
type Sink struct {
	cfg    Config
	client paho.Client
	filter *tic.Filter
	reload ReloadFunc

	fields map[string]interface{}
	valid  bool
}

// New builds a disconnected Sink; call Connect before feeding it frames.
func New(cfg Config, reload ReloadFunc) *Sink {
	return &Sink{cfg: cfg, reload: reload, valid: true, fields: make(map[string]interface{})}
}

// SetFilter installs a tag allow-list; nil clears it.
func (s *Sink) SetFilter(f *tic.Filter) { s.filter = f }

// Connect dials the broker and, if CommandTopic is set, subscribes to it
// once the connection is up.
func (s *Sink) Connect() error {
	opts := paho.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	opts.SetClientID(s.cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(func(paho.Client) {
		log.Println("tic: connected to MQTT broker")
		s.subscribeToCommands()
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Printf("tic: MQTT connection lost: %v", err)
	})

	s.client = paho.NewClient(opts)
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// Disconnect closes the broker connection.
func (s *Sink) Disconnect() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}

func (s *Sink) subscribeToCommands() {
	if s.cfg.CommandTopic == "" {
		return
	}
	token := s.client.Subscribe(s.cfg.CommandTopic, 1, s.handleCommand)
	go func() {
		<-token.Done()
		if token.Error() != nil {
			log.Printf("tic: subscribe to %s failed: %v", s.cfg.CommandTopic, token.Error())
		} else {
			log.Printf("tic: subscribed to command topic %s", s.cfg.CommandTopic)
		}
	}()
}

func (s *Sink) handleCommand(_ paho.Client, msg paho.Message) {
	log.Printf("tic: command received on %s", msg.Topic())
	if s.reload != nil {
		s.reload(msg.Payload())
	}
}

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
		log.Printf("tic: marshal frame for MQTT: %v", err)
		return
	}
	if s.client == nil || !s.client.IsConnected() {
		return
	}
	token := s.client.Publish(s.cfg.Topic, 0, false, payload)
	if token.Wait() && token.Error() != nil {
		log.Printf("tic: publish to %s: %v", s.cfg.Topic, token.Error())
	}
}

func (s *Sink) reset() {
	s.fields = make(map[string]interface{})
	s.valid = true
}
