// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command richtext lays out a rich text file and writes the
// resulting lines, optionally hit-testing a point within them.
//
// Usage:
//
//	richtext [flags] file
//
// The input file can be plain text, a span definition (.spans)
// or HTML (.html). Settings are read from any -config TOML files,
// and then overridden by flags given on the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/textlayout/base/logx"
	"cogentcore.org/textlayout/config"
	"cogentcore.org/textlayout/text/shaped/shapers"
)

// configFiles is a flag that can be given multiple times.
type configFiles []string

func (c *configFiles) String() string {
	return strings.Join(*c, ",")
}

func (c *configFiles) Set(s string) error {
	*c = append(*c, s)
	return nil
}

func main() {
	var files configFiles
	flag.Var(&files, "config", "TOML config `file`, can be given multiple times")
	measurer := flag.String("measurer", "", "measurer backend, one of: "+strings.Join(shapers.Names(), ", "))
	input := flag.String("input", "", "input format: auto, plain, spans, html, html-pre")
	output := flag.String("output", "", "output format: text, json, yaml, dump")
	width := flag.Float64("width", 0, "maximum width in dots, 0 for unbounded")
	height := flag.Float64("height", 0, "maximum height in dots, 0 for unbounded")
	lines := flag.Int("lines", 0, "maximum number of lines, 0 for unlimited")
	overflow := flag.String("overflow", "", "overflow policy: clip, ellipsis, visible")
	margin := flag.Float64("margin", 0, "reserved trailing margin in dots on a truncated last line")
	nowrap := flag.Bool("nowrap", false, "only break lines at newlines")
	hit := flag.String("hit", "", "hit-test the point `x,y` in the layout")
	fonts := flag.Bool("fonts", false, "list the fonts of the measurer and exit")
	watch := flag.Bool("watch", false, "lay out the file again whenever it changes")
	vv := flag.Bool("vv", false, "very verbose (debug) logging")
	v := flag.Bool("v", false, "verbose (info) logging")
	q := flag.Bool("q", false, "quiet: only log errors")
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	cfg, err := config.Open(files...)
	if err != nil {
		fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "measurer":
			cfg.Measurer = *measurer
		case "input":
			err = cfg.Input.UnmarshalText([]byte(*input))
		case "output":
			err = cfg.Output.UnmarshalText([]byte(*output))
		case "width":
			cfg.Constraints.MaxWidth = float32(*width)
		case "height":
			cfg.Constraints.MaxHeight = float32(*height)
		case "lines":
			cfg.Constraints.MaxLines = *lines
		case "overflow":
			err = cfg.Constraints.Overflow.UnmarshalText([]byte(*overflow))
		case "margin":
			cfg.Constraints.ReservedTrailingMargin = float32(*margin)
		case "nowrap":
			cfg.Constraints.SoftWrap = !*nowrap
		}
		if err != nil {
			fatal(fmt.Errorf("-%s: %w", f.Name, err))
		}
	})

	if *fonts {
		if err := listFonts(os.Stdout, cfg.Measurer); err != nil {
			fatal(err)
		}
		return
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: richtext [flags] file")
		flag.PrintDefaults()
		os.Exit(2)
	}
	r, err := newRunner(cfg, os.Stdout)
	if err != nil {
		fatal(err)
	}
	if *hit != "" {
		pt, err := parsePoint(*hit)
		if err != nil {
			fatal(err)
		}
		r.hit = &pt
	}
	fname := flag.Arg(0)
	if !*watch {
		if err := r.run(fname); err != nil {
			fatal(err)
		}
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := r.watch(ctx, fname); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
