// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides positions and ranges within text,
// in terms of rune indexes into a source []rune slice.
package textpos

import "fmt"

// Range defines a half-open range [Start, End) of rune indexes.
type Range struct {
	// Start is the starting index, inclusive.
	Start int

	// End is the ending index, exclusive.
	End int
}

// R returns a new [Range] with the given start and end.
func R(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Len returns the length of the range: End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has no content.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if range contains given index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Covers returns true if this range fully covers the other range,
// which must lie within [Start, End].
func (r Range) Covers(o Range) bool {
	return r.Start <= o.Start && r.End >= o.End
}

// Intersect returns the intersection of two ranges.
// If they do not overlap, then the Start and End will be -1.
func (r Range) Intersect(o Range) Range {
	o.Start = max(o.Start, r.Start)
	o.End = min(o.End, r.End)
	if o.Len() <= 0 {
		return Range{-1, -1}
	}
	return o
}

// Clamp returns the range with both ends clamped into [0, n],
// swapping Start and End if they are reversed.
func (r Range) Clamp(n int) Range {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	r.Start = min(max(r.Start, 0), n)
	r.End = min(max(r.End, 0), n)
	return r
}
