// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/textlayout/config"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/shaped"
	"github.com/muesli/termenv"
	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"
)

// write writes the result in the given format.
func write(w io.Writer, format config.Outputs, res *result) error {
	switch format {
	case config.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case config.Dump:
		opts := litter.Options{HidePrivateFields: true, StripPackageNames: true, HideZeroValues: true}
		_, err := io.WriteString(w, opts.Sdump(res)+"\n")
		return err
	}
	return writeText(termenv.NewOutput(w), res)
}

// writeText writes the text of each line, styled with the terminal
// colors and attributes of its runs, followed by a summary.
func writeText(out *termenv.Output, res *result) error {
	ls := res.Lines
	src := ls.Source.Source
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		var b strings.Builder
		for ri := range ln.Runs {
			rn := &ln.Runs[ri]
			var txt string
			if rn.IsPlaceholder() {
				txt = "[" + ls.Source.Placeholders[rn.Placeholder].Placeholder.ID + "]"
			} else {
				txt = strings.TrimRight(rn.Text(src), "\r\n\u2028\u2029")
			}
			if txt == "" {
				continue
			}
			b.WriteString(styleRun(out, rn).Styled(txt))
		}
		if _, err := fmt.Fprintln(out, b.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "-- size: %gx%g lines: %d truncated: %v overflow: %v\n",
		ls.Size.X, ls.Size.Y, len(ls.Lines), ls.Truncated, ls.Overflow)
	if err != nil {
		return err
	}
	if res.Hit != nil {
		_, err = fmt.Fprintf(out, "-- hit: %s\n", res.Hit)
	}
	return err
}

// styleRun returns the terminal style for the run.
func styleRun(out *termenv.Output, rn *shaped.Run) termenv.Style {
	st := out.String()
	if rn.Paint.Color.A > 0 {
		st = st.Foreground(out.Color(hexColor(rn.Paint.Color)))
	}
	if rn.Paint.Background.A > 0 {
		st = st.Background(out.Color(hexColor(rn.Paint.Background)))
	}
	if rn.Font.Weight.IsBold() {
		st = st.Bold()
	}
	if rn.Font.Slant == rich.Italic {
		st = st.Italic()
	}
	if rn.Paint.Decoration.HasFlag(rich.Underline) || rn.Link() >= 0 {
		st = st.Underline()
	}
	if rn.Paint.Decoration.HasFlag(rich.LineThrough) {
		st = st.CrossOut()
	}
	return st
}

// hexColor returns the #rrggbb form of the color, without alpha.
func hexColor(c color.RGBA) string {
	return rich.ColorString(c)[:7]
}
