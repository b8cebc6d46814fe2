// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spandef

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/segment"
)

// Format returns a span definition for the given text, with one
// group for each run of text that has the same properties.
// Parsing the result gives a text that lays out the same way,
// although its ranges are not nested in the same way.
func Format(tx *rich.Text) string {
	var b strings.Builder
	for _, rn := range segment.Segment(tx) {
		if rn.Range.IsEmpty() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		if rn.IsPlaceholder() {
			ph := tx.Placeholders[rn.Placeholder].Placeholder
			fmt.Fprintf(&b, "[ %s width=%g height=%g align=%s ]", ph.ID, ph.Width, ph.Height, ph.VerticalAlign)
			continue
		}
		attrs := formatAttrs(tx, &rn)
		txt := strconv.Quote(string(tx.Slice(rn.Range)))
		if len(attrs) == 0 {
			b.WriteString(txt)
			continue
		}
		fmt.Fprintf(&b, "{ %s %s }", strings.Join(attrs, " "), txt)
	}
	return b.String()
}

// formatAttrs returns the attributes for the given run.
func formatAttrs(tx *rich.Text, rn *segment.Run) []string {
	var attrs []string
	add := func(key string, val any) {
		attrs = append(attrs, fmt.Sprintf("%s=%v", key, val))
	}
	pa := rn.Paragraph
	if pa.Set.Has(rich.ParaAlign) {
		add("align", pa.Align)
	}
	if pa.Set.Has(rich.ParaLineHeight) {
		add("line-height", pa.LineHeight)
	}
	if pa.Set.Has(rich.ParaIndent) {
		add("indent", pa.Indent)
	}
	if lk := rn.Link(); lk >= 0 {
		l := tx.Links[lk].Link
		add("link", strconv.Quote(l.ID))
		if l.URL != "" {
			add("url", strconv.Quote(l.URL))
		}
	}
	sty := rn.Style
	if sty.Set.Has(rich.PropSize) {
		add("size", sty.Size)
	}
	if sty.Set.Has(rich.PropWeight) {
		add("weight", sty.Weight)
	}
	if sty.Set.Has(rich.PropSlant) {
		add("slant", sty.Slant)
	}
	if sty.Set.Has(rich.PropFamily) {
		add("family", strconv.Quote(sty.Family))
	}
	if sty.Set.Has(rich.PropLetterSpacing) {
		add("letter-spacing", sty.LetterSpacing)
	}
	if sty.Set.Has(rich.PropFill) && sty.Gradient == nil {
		add("color", rich.ColorString(sty.Color))
	}
	if sty.Set.Has(rich.PropBackground) {
		add("background", rich.ColorString(sty.Background))
	}
	if sty.Set.Has(rich.PropDecoration) {
		add("decoration", strconv.Quote(sty.Decoration.String()))
	}
	return attrs
}
