// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/textlayout/base/ordmap"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/segment"
	"cogentcore.org/textlayout/text/text"
	"cogentcore.org/textlayout/text/textpos"
)

// LineSlack is the extra vertical space added after each line except the last.
const LineSlack float32 = 1

// Lines is the result of laying out a [rich.Text]: a list of [Line]s
// of positioned runs, with the placeholder and link rectangles needed
// by the caller. All coordinates are in dots, relative to the upper left
// of the text. A Lines is never modified by layout once it is returned,
// so it can be shared among any number of readers.
type Lines struct {

	// Source is the text that was laid out.
	Source *rich.Text `json:"-" yaml:"-"`

	// Lines are the laid out lines. There is always at least one.
	Lines []Line

	// Size is the size of the text, clamped to the constraints.
	Size math32.Vector2

	// Bounds is the bounding box of all of the content, which can
	// extend beyond Size when the content overflows.
	Bounds math32.Box2

	// Placeholders are the rectangles of the placeholders that were laid out.
	Placeholders []PlaceholderRect

	// Links are the rectangles covering each link range that was laid out,
	// keyed and ordered by link range index.
	Links *ordmap.Map[int, LinkRects]

	// Truncated is true if any content was dropped to fit the constraints.
	Truncated bool

	// Overflow is true if the content extends beyond Size.
	Overflow bool

	// LineHeight is the default line height used for empty and padding lines.
	LineHeight float32

	// Constraints are the constraints that the text was laid out with.
	Constraints text.Constraints `json:"-"`
}

// Line is one line of laid out runs.
type Line struct {

	// Index is the index of the line.
	Index int

	// SourceRange is the range of source runes on the line,
	// including any trailing whitespace.
	SourceRange textpos.Range

	// Runs are the runs on the line, in order. Each has its Bounds set.
	Runs []Run

	// Top is the vertical offset of the top of the line.
	Top float32

	// Height is the height of the line, not including [LineSlack].
	Height float32

	// Baseline is the vertical position of the baseline.
	Baseline float32

	// Left is the horizontal offset of the start of the line content.
	Left float32

	// Width is the total advance of the runs on the line.
	Width float32

	// VisibleWidth is the width of the line content without trailing
	// whitespace, which is used for alignment and for the bounds.
	VisibleWidth float32

	// Ellipsis is true if the line was truncated with an ellipsis.
	Ellipsis bool `json:",omitempty"`

	// Selections are the selected source ranges within this line.
	Selections []textpos.Range `json:",omitempty"`
}

// PlaceholderRect is the rectangle of a laid out placeholder.
type PlaceholderRect struct {

	// Index is the index of the placeholder in the source text.
	Index int

	// ID is the placeholder identifier.
	ID string

	// Line is the index of the line it is on.
	Line int

	// Rect is the rectangle in local coordinates.
	Rect math32.Box2
}

// Box returns the rectangle of the line from Left to Left + Width
// and from Top to Top + Height.
func (ln *Line) Box() math32.Box2 {
	return math32.B2(ln.Left, ln.Top, ln.Left+ln.Width, ln.Top+ln.Height)
}

// Right returns the right edge of the runs on the line.
func (ln *Line) Right() float32 {
	return ln.Left + ln.Width
}

// Text returns the text of the line, with any ellipsis marker.
func (ln *Line) Text(src []rune) string {
	var b strings.Builder
	for ri := range ln.Runs {
		b.WriteString(ln.Runs[ri].Text(src))
	}
	return b.String()
}

func (ln *Line) String() string {
	return fmt.Sprintf("line %d %s top: %g height: %g baseline: %g left: %g width: %g runs: %d",
		ln.Index, ln.SourceRange, ln.Top, ln.Height, ln.Baseline, ln.Left, ln.Width, len(ln.Runs))
}

func (ls *Lines) String() string {
	var b strings.Builder
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		b.WriteString(ln.String())
		b.WriteByte('\n')
		for ri := range ln.Runs {
			b.WriteString("\t" + ln.Runs[ri].String() + "\n")
		}
	}
	return b.String()
}

// Text returns the text of each line, with ellipsis markers.
func (ls *Lines) Text() []string {
	txt := make([]string, len(ls.Lines))
	for li := range ls.Lines {
		txt[li] = ls.Lines[li].Text(ls.Source.Source)
	}
	return txt
}

// NumRuns returns the total number of runs on all lines.
func (ls *Lines) NumRuns() int {
	n := 0
	for li := range ls.Lines {
		n += len(ls.Lines[li].Runs)
	}
	return n
}

// Clone returns a copy of the Lines with new Lines and Runs slices,
// so that the copy can be modified without affecting the original.
func (ls *Lines) Clone() *Lines {
	nls := &Lines{}
	*nls = *ls
	nls.Lines = slices.Clone(ls.Lines)
	for li := range nls.Lines {
		ln := &nls.Lines[li]
		ln.Runs = slices.Clone(ln.Runs)
		ln.Selections = slices.Clone(ln.Selections)
	}
	nls.Placeholders = slices.Clone(ls.Placeholders)
	return nls
}

// UpdateStyle returns a copy of the Lines with the rendering properties
// of every run updated from the given text, which must be
// [rich.Text.LayoutEqual] to the source that was laid out: it can only
// differ in properties such as colors that do not affect layout.
// An ellipsis is painted like the run before it on its line.
func (ls *Lines) UpdateStyle(tx *rich.Text, tsty *text.Style) *Lines {
	nls := ls.Clone()
	nls.Source = tx
	segs := segment.Segment(tx)
	for li := range nls.Lines {
		ln := &nls.Lines[li]
		for ri := range ln.Runs {
			rn := &ln.Runs[ri]
			if rn.Ellipsis && ri > 0 {
				rn.Paint = ln.Runs[ri-1].Paint
				continue
			}
			if rn.Span < 0 || rn.Span >= len(segs) {
				continue
			}
			sty := tsty.Resolve(segs[rn.Span].Style)
			rn.Paint = NewPaint(&sty)
		}
	}
	return nls
}
