// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"sort"

	"cogentcore.org/textlayout/math32"
)

// Hit is the result of hit-testing a point against laid out text.
// A miss has a Span of -1.
type Hit struct {

	// Span is the index of the segment run at the point, or -1 for a miss.
	Span int

	// Rune is the source index of the rune at the point, or -1.
	Rune int

	// Link is the index of the first link range covering the run
	// at the point, or -1.
	Link int

	// LinkID is the identifier of the link, if any.
	LinkID string

	// Placeholder is the index of the placeholder at the point, or -1.
	Placeholder int

	// Line is the index of the line at the point, or -1 if there are no lines.
	Line int
}

// IsMiss returns true if the hit did not land on any run.
func (h Hit) IsMiss() bool {
	return h.Span < 0
}

func (h Hit) String() string {
	if h.IsMiss() {
		return fmt.Sprintf("miss (line %d)", h.Line)
	}
	s := fmt.Sprintf("span: %d rune: %d line: %d", h.Span, h.Rune, h.Line)
	if h.Link >= 0 {
		s += fmt.Sprintf(" link: %d %q", h.Link, h.LinkID)
	}
	if h.Placeholder >= 0 {
		s += fmt.Sprintf(" placeholder: %d", h.Placeholder)
	}
	return s
}

// miss returns a Hit that is a miss on the given line.
func miss(line int) Hit {
	return Hit{Span: -1, Rune: -1, Link: -1, Placeholder: -1, Line: line}
}

// LineAt returns the index of the line whose vertical band, including
// the [LineSlack] after it, contains the given y position. Positions
// above the first line or below the last line return the first or last line.
// It returns -1 if there are no lines.
func (ls *Lines) LineAt(y float32) int {
	n := len(ls.Lines)
	if n == 0 {
		return -1
	}
	li := sort.Search(n, func(i int) bool { return ls.Lines[i].Top > y }) - 1
	return min(max(li, 0), n-1)
}

// RunAt returns the index of the run containing the given x position,
// clamped to the runs on the line. It returns -1 if there are no runs.
func (ln *Line) RunAt(x float32) int {
	n := len(ln.Runs)
	if n == 0 {
		return -1
	}
	ri := sort.Search(n, func(i int) bool { return ln.Runs[i].Bounds.Max.X > x })
	return min(ri, n-1)
}

// HitTest returns what is at the given point in the local coordinates
// of the text. The line is found from the y position, using the first
// or last line for positions beyond them. A point beyond the start or
// end of the runs on the line is a miss, even if it is within the Size
// of the text, e.g., to the right of a short last line.
func (ls *Lines) HitTest(pt math32.Vector2) Hit {
	li := ls.LineAt(pt.Y)
	if li < 0 {
		return miss(li)
	}
	ln := &ls.Lines[li]
	if len(ln.Runs) == 0 || pt.X < ln.Left || pt.X > ln.Right() {
		return miss(li)
	}
	rn := &ln.Runs[ln.RunAt(pt.X)]
	hit := Hit{Span: rn.Span, Rune: rn.Range.Start, Link: rn.Link(), Placeholder: rn.Placeholder, Line: li}
	if k := rn.GraphemeAt(pt.X - rn.Bounds.Min.X); k >= 0 && k < len(rn.Clusters) {
		hit.Rune = rn.Clusters[k]
	}
	if hit.Link >= 0 && hit.Link < len(ls.Source.Links) {
		hit.LinkID = ls.Source.Links[hit.Link].Link.ID
	}
	return hit
}
