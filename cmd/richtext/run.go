// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/textlayout/config"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/htmltext"
	"cogentcore.org/textlayout/text/layout"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/rich/spandef"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers"
	"cogentcore.org/textlayout/text/text"
)

// runner lays out files with the settings of a config.
type runner struct {
	cfg  *config.Config
	m    shaped.Measurer
	tsty *text.Style
	w    io.Writer

	// hit is a point to hit-test, if non-nil.
	hit *math32.Vector2
}

func newRunner(cfg *config.Config, w io.Writer) (*runner, error) {
	m, err := shapers.New(cfg.Measurer)
	if err != nil {
		return nil, err
	}
	tsty, err := cfg.TextStyle()
	if err != nil {
		return nil, err
	}
	return &runner{cfg: cfg, m: m, tsty: tsty, w: w}, nil
}

// result is the output of one layout pass.
type result struct {
	Lines *shaped.Lines
	Hit   *shaped.Hit `json:",omitempty" yaml:",omitempty"`
}

// run lays out the given file and writes the result.
func (r *runner) run(fname string) error {
	res, err := r.layout(fname)
	if err != nil {
		return err
	}
	return write(r.w, r.cfg.Output, res)
}

// layout reads and lays out the given file.
func (r *runner) layout(fname string) (*result, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	tx, err := readText(b, r.cfg.Input.ForFile(fname), r.cfg.Sizes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	res := &result{Lines: layout.Layout(tx, r.cfg.TextConstraints(), r.m, nil, r.tsty)}
	if r.hit != nil {
		h := res.Lines.HitTest(*r.hit)
		res.Hit = &h
	}
	return res, nil
}

// readText converts the contents of a file in the given format to text.
func readText(b []byte, format config.Inputs, sizes map[string]rich.PlaceholderSize) (*rich.Text, error) {
	switch format {
	case config.Spans:
		return spandef.ParseString(string(b), sizes)
	case config.HTML:
		return htmltext.HTMLToRich(b, sizes)
	case config.HTMLPre:
		return htmltext.HTMLPreToRich(b, sizes)
	}
	return rich.NewPlainText(string(b)), nil
}

// parsePoint parses a point given as "x,y".
func parsePoint(s string) (math32.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math32.Vector2{}, fmt.Errorf("point %q must be given as x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("point %q: %w", s, err)
	}
	return math32.Vec2(float32(x), float32(y)), nil
}

// listFonts writes the fonts of the named measurer, if it can list them.
func listFonts(w io.Writer, name string) error {
	m, err := shapers.New(name)
	if err != nil {
		return err
	}
	fl, ok := m.(shaped.FontLister)
	if !ok {
		return fmt.Errorf("measurer %q cannot list its fonts", name)
	}
	for _, fi := range fl.FontList() {
		fmt.Fprintln(w, fi.Label())
	}
	return nil
}
