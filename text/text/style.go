// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"image/color"

	"cogentcore.org/textlayout/text/rich"
)

// Style is used for text layout styling: it provides the defaults
// that apply to the whole text, underneath the [rich.Style] and
// [rich.Paragraph] ranges of the [rich.Text].
type Style struct { //types:add

	// Align specifies how to align lines of text, unless overridden
	// by a [rich.Paragraph] range.
	Align rich.Aligns

	// Font is the default character style. All of its properties
	// are specified, so that any range style merges on top of it.
	Font rich.Style

	// LineSpacing is a multiplier on the font-derived line height.
	// The default of 1 represents "single spaced" text.
	// It does not apply to paragraphs with an explicit line height.
	LineSpacing float32 `default:"1"`

	// Indent is the default indentation of the first line of each
	// paragraph, in dots.
	Indent float32

	// Ellipsis is the marker appended to truncated text.
	Ellipsis string `default:"…"`

	// SelectColor is the background color for selected text regions.
	SelectColor color.RGBA
}

// DefaultFamily is the font family used when none is specified.
const DefaultFamily = "sans-serif"

func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

func (ts *Style) Defaults() {
	ts.Align = rich.Start
	ts.Font = rich.Style{}
	ts.Font.SetSize(16).SetWeight(rich.Normal).SetSlant(rich.SlantNormal).SetFamily(DefaultFamily).
		SetLetterSpacing(0).SetColor(color.Black).SetBackground(color.Transparent).
		SetShadow(rich.Shadow{}).SetDecoration()
	ts.LineSpacing = 1
	ts.Indent = 0
	ts.Ellipsis = "…"
	ts.SelectColor = color.RGBA{R: 0xb3, G: 0xd4, B: 0xfc, A: 0xff}
}

// FontHeight returns the font size in dots for the given style,
// falling back on the default font size.
func (ts *Style) FontHeight(sty *rich.Style) float32 {
	if sty != nil && sty.Set.Has(rich.PropSize) && sty.Size > 0 {
		return sty.Size
	}
	return ts.Font.Size
}

// Resolve returns the full character style for the given range style,
// merged on top of the default font.
func (ts *Style) Resolve(sty rich.Style) rich.Style {
	return ts.Font.Merge(sty)
}

// Paragraph returns the full paragraph properties for the given range
// paragraph, using the defaults for anything it does not specify.
func (ts *Style) Paragraph(p rich.Paragraph) rich.Paragraph {
	var def rich.Paragraph
	def.SetAlign(ts.Align).SetIndent(ts.Indent)
	return def.Merge(p)
}
