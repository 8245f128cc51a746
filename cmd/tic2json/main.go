// Command tic2json decodes a TIC byte stream from stdin and writes JSON to
// stdout, one object (or array) per frame: the reference one-shot CLI of
// spec §6, wired to the package's core decoder and JSON sink.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ticdecoder/tic2json/internal/dialect/v01"
	"github.com/ticdecoder/tic2json/internal/dialect/v01pme"
	"github.com/ticdecoder/tic2json/internal/dialect/v02"
	"github.com/ticdecoder/tic2json/internal/sink/jsonsink"
	"github.com/ticdecoder/tic2json/internal/tic"
)

const version = "1.0.0"

var (
	histo   = flag.Bool("1", false, "decode the historique (V01) dialect")
	std     = flag.Bool("2", false, "decode the standard (V02) dialect")
	pme     = flag.Bool("P", false, "decode the PME-PMI variant of V01")
	dict    = flag.Bool("d", false, "dictionary output mode instead of list mode")
	long    = flag.Bool("l", false, "include field descriptions and units")
	newline = flag.Bool("n", false, "emit one JSON value per line")
	profile = flag.Bool("p", false, "decode PJOURF+1/PPOINTE day profiles")
	iso     = flag.Bool("r", false, "re-emit horodates in ISO-8601")
	stge    = flag.Bool("u", false, "decode the STGE status register")
	zero    = flag.Bool("z", false, "mask (omit) numeric fields whose value is zero")
	filter  = flag.String("e", "", "path to a tag filter file")
	id      = flag.String("i", "", "inject this value as an \"id\" tag on every field")
	skip    = flag.Int("s", 0, "emit only every Nth frame (0 or 1 means every frame)")
	showVer = flag.Bool("V", false, "print version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVer {
		fmt.Println("tic2json", version)
		os.Exit(0)
	}

	d, err := selectDialect(*histo, *std, *pme)
	if err != nil {
		log.Print(err)
		flag.Usage()
		os.Exit(1)
	}

	opt := jsonsink.Options{
		Dict:            *dict,
		LongForm:        *long,
		NewlinePerField: *newline,
		DecodeProfile:   *profile,
		ISOHorodate:     *iso,
		DecodeStge:      *stge,
		ZeroMask:        *zero,
		ID:              *id,
		SkipN:           *skip,
	}

	if *filter != "" {
		f, err := os.Open(*filter)
		if err != nil {
			log.Fatalf("tic2json: opening filter file: %v", err)
		}
		opt.Filter, err = tic.LoadFilter(d, f)
		f.Close()
		if err != nil {
			log.Fatalf("tic2json: loading filter: %v", err)
		}
	}

	sink := jsonsink.New(os.Stdout, opt)
	defer sink.Flush()

	dec := tic.NewDecoder(d, sink, func(err error) {
		log.Print(err)
	})
	if err := dec.Run(os.Stdin); err != nil {
		log.Fatalf("tic2json: reading stdin: %v", err)
	}
}

func selectDialect(histo, std, pme bool) (*tic.Dialect, error) {
	n := 0
	for _, b := range []bool{histo, std, pme} {
		if b {
			n++
		}
	}
	switch {
	case n == 0:
		return nil, &tic.ConfigError{Reason: "no dialect selected: pass -1, -2, or -P"}
	case n > 1:
		return nil, &tic.ConfigError{Reason: "only one dialect flag may be given"}
	case histo:
		return v01.Dialect, nil
	case std:
		return v02.Dialect, nil
	default:
		return v01pme.Dialect, nil
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: tic2json [-1|-2|-P] [options] < stream\n\n")
	flag.PrintDefaults()
}
