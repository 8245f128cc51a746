// Command tic-agent is the long-running counterpart to tic2json: it opens
// a real serial line, decodes continuously, and fans each frame out to an
// MQTT topic and/or a UDP peer while persisting STGE status-register
// alerts to disk. Flag layout, serial.Config construction, and the
// signal-based graceful shutdown are carried over from the vehicle-bus
// agent binaries (cmd/agent-j1587, cmd/agent-j1939).
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tarm/serial"
	bolt "go.etcd.io/bbolt"

	"github.com/ticdecoder/tic2json/common"
	"github.com/ticdecoder/tic2json/internal/dialect/v01"
	"github.com/ticdecoder/tic2json/internal/dialect/v01pme"
	"github.com/ticdecoder/tic2json/internal/dialect/v02"
	"github.com/ticdecoder/tic2json/internal/sink"
	"github.com/ticdecoder/tic2json/internal/sink/mqtt"
	"github.com/ticdecoder/tic2json/internal/sink/udp"
	"github.com/ticdecoder/tic2json/internal/tic"
	"github.com/ticdecoder/tic2json/pkg/alertstore"
)

const (
	defaultPortName     = "/dev/ttyUSB0"
	defaultBaudRate     = 9600
	defaultDialect      = "2"
	defaultMqttBroker   = "tcp://localhost:1883"
	defaultMqttTopic    = "tic/data"
	defaultCommandTopic = "tic/command"
	defaultAlertDBPath  = "tic-alerts.db"
)

var (
	portName     = flag.String("port", defaultPortName, "serial port to read TIC frames from")
	baudRate     = flag.Int("baud", defaultBaudRate, "serial baud rate")
	dialectName  = flag.String("dialect", defaultDialect, "TIC dialect: 1 (historique), 2 (standard), or P (PME-PMI)")
	mqttBroker   = flag.String("broker", defaultMqttBroker, "MQTT broker URL, empty to disable MQTT publishing")
	mqttTopic    = flag.String("topic", defaultMqttTopic, "MQTT topic for decoded frames")
	commandTopic = flag.String("command_topic", defaultCommandTopic, "MQTT topic for remote commands")
	udpAddr      = flag.String("udp", "", "UDP host:port to send decoded frames to, empty to disable")
	filterPath   = flag.String("filter", "", "path to a tag filter file, empty to disable filtering")
	alertDBPath  = flag.String("alert_db", defaultAlertDBPath, "path to the STGE alert store")
)

func main() {
	flag.Parse()

	d, err := dialectByName(*dialectName)
	if err != nil {
		log.Fatalf("tic-agent: %v", err)
	}

	portConfig := &serial.Config{
		Name:        *portName,
		Baud:        *baudRate,
		ReadTimeout: 100 * time.Millisecond,
	}
	port, err := serial.OpenPort(portConfig)
	if err != nil {
		log.Fatalf("tic-agent: opening serial port %s: %v", *portName, err)
	}
	defer port.Close()

	db, err := alertstore.OpenDB(*alertDBPath)
	if err != nil {
		log.Fatalf("tic-agent: opening alert store: %v", err)
	}
	defer db.Close()

	var fanout sink.Fanout
	fanout = append(fanout, newAlertSink(db))

	var udpSink *udp.Sink
	if *udpAddr != "" {
		udpSink, err = udp.Dial(*udpAddr)
		if err != nil {
			log.Fatalf("tic-agent: dialing UDP peer %s: %v", *udpAddr, err)
		}
		defer udpSink.Close()
		fanout = append(fanout, udpSink)
	}

	var mqttSink *mqtt.Sink
	if *mqttBroker != "" {
		mqttSink = mqtt.New(mqtt.Config{
			Broker:       *mqttBroker,
			ClientID:     "tic-agent",
			Topic:        *mqttTopic,
			CommandTopic: *commandTopic,
		}, func(payload []byte) { handleCommand(d, payload, mqttSink, udpSink, db) })
		if err := mqttSink.Connect(); err != nil {
			log.Fatalf("tic-agent: connecting to MQTT broker: %v", err)
		}
		defer mqttSink.Disconnect()
		fanout = append(fanout, mqttSink)
	}

	var filter *tic.Filter
	if *filterPath != "" {
		filter, err = loadFilter(d, *filterPath)
		if err != nil {
			log.Fatalf("tic-agent: loading filter: %v", err)
		}
		if mqttSink != nil {
			mqttSink.SetFilter(filter)
		}
		if udpSink != nil {
			udpSink.SetFilter(filter)
		}
	}

	dec := tic.NewDecoder(d, fanout, func(err error) {
		log.Printf("tic-agent: %v", err)
	})

	done := make(chan error, 1)
	go func() { done <- dec.Run(port) }()

	log.Printf("tic-agent: decoding %s on %s, Ctrl+C to stop", *dialectName, *portName)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("tic-agent: shutting down")
	case err := <-done:
		if err != nil {
			log.Fatalf("tic-agent: decoder stopped: %v", err)
		}
	}
}

func dialectByName(name string) (*tic.Dialect, error) {
	switch name {
	case "1":
		return v01.Dialect, nil
	case "2":
		return v02.Dialect, nil
	case "P", "p":
		return v01pme.Dialect, nil
	default:
		return nil, &tic.ConfigError{Reason: "unknown dialect " + name + ", use 1, 2, or P"}
	}
}

func loadFilter(d *tic.Dialect, path string) (*tic.Filter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tic.LoadFilter(d, f)
}

func handleCommand(d *tic.Dialect, payload []byte, mqttSink *mqtt.Sink, udpSink *udp.Sink, db *bolt.DB) {
	var cmd common.RemoteCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		log.Printf("tic-agent: malformed command: %v", err)
		return
	}
	switch cmd.Type {
	case common.CommandTypeReloadFilter:
		path := *filterPath
		if cmd.Params.FilterPath != nil {
			path = *cmd.Params.FilterPath
		}
		f, err := loadFilter(d, path)
		if err != nil {
			log.Printf("tic-agent: reload_filter: %v", err)
			return
		}
		if mqttSink != nil {
			mqttSink.SetFilter(f)
		}
		if udpSink != nil {
			udpSink.SetFilter(f)
		}
		log.Printf("tic-agent: filter reloaded from %s", path)
	case common.CommandTypeClearAlerts:
		if err := alertstore.ClearAll(db); err != nil {
			log.Printf("tic-agent: clear_alerts: %v", err)
			return
		}
		log.Printf("tic-agent: alert store cleared")
	default:
		log.Printf("tic-agent: unknown command type: %s", cmd.Type)
	}
}
