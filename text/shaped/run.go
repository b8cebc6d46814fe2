// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"slices"
	"sort"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/textpos"
)

// Run is a resolved run of text with uniform style, or a placeholder,
// with everything needed to render it and to map positions within it
// back to the source.
type Run struct {

	// Span is the index of the segment run that this run comes from.
	// A line may contain only part of a segment run, and an ellipsis
	// run has the span of the first run that was dropped.
	Span int

	// Range is the range of source runes in this run. It is empty
	// for an ellipsis run.
	Range textpos.Range

	// Placeholder is the index of the placeholder, or -1 for text.
	Placeholder int

	// Links are the indexes of the link ranges covering this run,
	// in declaration order.
	Links []int `json:",omitempty"`

	// Ellipsis is true for the run holding the ellipsis marker.
	Ellipsis bool `json:",omitempty"`

	// Marker is the ellipsis marker text, for an ellipsis run.
	Marker string `json:",omitempty"`

	// Font is the resolved font.
	Font Font

	// Paint has the resolved rendering properties.
	Paint Paint

	// Paragraph has the resolved paragraph properties.
	Paragraph rich.Paragraph `json:"-"`

	// Metrics are the vertical metrics of the font.
	Metrics FontMetrics

	// Width is the total advance width of the run.
	Width float32

	// Clusters are the source rune indexes where each grapheme starts.
	Clusters []int

	// Offsets are the cumulative advances at the end of each grapheme,
	// relative to the start of the run. The last offset is the Width.
	Offsets []float32

	// Bounds is the rectangle of the run in the local coordinates of
	// the laid out text: the line band for text, and the placeholder
	// rectangle for a placeholder. It is set by [Wrap]: before that,
	// the Bounds of a placeholder run has its size.
	Bounds math32.Box2
}

// IsPlaceholder returns true if this is a placeholder run.
func (rn *Run) IsPlaceholder() bool {
	return rn.Placeholder >= 0
}

// Link returns the index of the first link range covering the run,
// or -1 if there is none.
func (rn *Run) Link() int {
	if len(rn.Links) == 0 {
		return -1
	}
	return rn.Links[0]
}

// Text returns the text of the run from the given source.
func (rn *Run) Text(src []rune) string {
	if rn.Ellipsis {
		return rn.Marker
	}
	rg := rn.Range.Clamp(len(src))
	return string(src[rg.Start:rg.End])
}

// GraphemeStart returns the offset of the start of the k'th grapheme.
func (rn *Run) GraphemeStart(k int) float32 {
	if k <= 0 || len(rn.Offsets) == 0 {
		return 0
	}
	return rn.Offsets[min(k, len(rn.Offsets))-1]
}

// GraphemeAt returns the index of the grapheme containing the given
// offset from the start of the run, clamped to the graphemes of the run.
// It returns -1 if the run has no graphemes.
func (rn *Run) GraphemeAt(x float32) int {
	n := len(rn.Offsets)
	if n == 0 {
		return -1
	}
	k := sort.Search(n, func(i int) bool { return rn.Offsets[i] > x })
	return min(k, n-1)
}

// GraphemeOf returns the index of the grapheme containing the given
// source rune index, or -1 if it is not in the run.
func (rn *Run) GraphemeOf(ri int) int {
	if !rn.Range.Contains(ri) {
		return -1
	}
	k, found := slices.BinarySearch(rn.Clusters, ri)
	if found {
		return k
	}
	return k - 1
}

// Slice returns the part of the run covering graphemes [from, to),
// with offsets relative to the new start.
func (rn *Run) Slice(from, to int) Run {
	n := len(rn.Clusters)
	from, to = max(from, 0), min(to, n)
	sr := *rn
	if from >= to {
		sr.Clusters, sr.Offsets = nil, nil
		sr.Width = 0
		at := rn.Range.End
		if from < n {
			at = rn.Clusters[from]
		}
		sr.Range = textpos.R(at, at)
		return sr
	}
	x0 := rn.GraphemeStart(from)
	sr.Clusters = slices.Clone(rn.Clusters[from:to])
	sr.Offsets = make([]float32, to-from)
	for i := range sr.Offsets {
		sr.Offsets[i] = rn.Offsets[from+i] - x0
	}
	sr.Width = sr.Offsets[len(sr.Offsets)-1]
	end := rn.Range.End
	if to < n {
		end = rn.Clusters[to]
	}
	sr.Range = textpos.R(rn.Clusters[from], end)
	return sr
}

func (rn *Run) String() string {
	if rn.Ellipsis {
		return fmt.Sprintf("span: %d ellipsis %q width: %g", rn.Span, rn.Marker, rn.Width)
	}
	if rn.IsPlaceholder() {
		return fmt.Sprintf("span: %d %s placeholder: %d bounds: %v", rn.Span, rn.Range, rn.Placeholder, rn.Bounds)
	}
	return fmt.Sprintf("span: %d %s font: %s width: %g", rn.Span, rn.Range, rn.Font, rn.Width)
}
