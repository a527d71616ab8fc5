/*
NAME
  iabvalidate

DESCRIPTION
  iabvalidate reads an IAB bitstream from a file and reports its
  conformance against every constraint set this module recognizes.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements iabvalidate, the command-line conformance
// report driver.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/iab/constraint"
	"github.com/ausocean/iab/parser"
	"github.com/ausocean/iab/validate"
)

const (
	logPath      = "iabvalidate.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
)

func main() {
	path := flag.String("in", "", "path to the IAB bitstream to validate")
	set := flag.String("set", "", "report only this constraint set (default: all)")
	flag.Parse()
	if *path == "" {
		fmt.Fprintln(os.Stderr, "iabvalidate: -in is required")
		os.Exit(2)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, fileLog, true)

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Error("reading input file", "error", err)
		os.Exit(1)
	}

	p := parser.NewStreaming(data, parser.WithLogger(log))
	v, err := validate.New(validate.WithLogger(log))
	if err != nil {
		log.Error("constructing validator", "error", err)
		os.Exit(1)
	}

	frameIndex := 0
	for {
		if err := p.ParseFrame(); err != nil {
			if perr, ok := err.(*parser.ParseError); ok && perr.Kind == parser.ErrEndOfStream {
				break
			}
			log.Error("parsing frame", "frame", frameIndex, "error", err)
			os.Exit(1)
		}
		if err := v.ValidateFrame(p.Frame(), frameIndex); err != nil {
			log.Error("validating frame", "frame", frameIndex, "error", err)
			os.Exit(1)
		}
		frameIndex++
	}

	sets := constraint.All()
	if *set != "" {
		sets = filterSets(sets, *set)
	}
	for _, s := range sets {
		fmt.Printf("%-24s %s\n", s, v.Result(s))
		for _, iss := range v.IssuesSingleSet(s) {
			fmt.Printf("  %s\n", iss)
		}
	}
}

func filterSets(all []constraint.Set, name string) []constraint.Set {
	var out []constraint.Set
	for _, s := range all {
		if s.String() == name {
			out = append(out, s)
		}
	}
	return out
}
