// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment partitions a [rich.Text] into non-overlapping runs,
// each carrying the merged attributes of all the ranges that cover it.
package segment

import (
	"fmt"
	"slices"

	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/textpos"
)

// Run is a maximal slice of the source with uniform attributes, or a
// single placeholder. Runs are produced in source order and partition
// the source.
type Run struct {
	// Range is the source rune range of the run.
	Range textpos.Range

	// Placeholder is the index of the placeholder for a placeholder run,
	// or -1 for a text run.
	Placeholder int

	// Styles are the indexes of the style ranges covering the run,
	// in declaration order.
	Styles []int

	// Paragraphs are the indexes of the paragraph ranges covering the run,
	// in declaration order.
	Paragraphs []int

	// Links are the indexes of the link ranges covering the run,
	// in declaration order.
	Links []int

	// Style is the merge of all the covering styles, later ones
	// overriding earlier ones for each property they specify.
	Style rich.Style

	// Paragraph is the merge of all the covering paragraph properties.
	Paragraph rich.Paragraph
}

// IsPlaceholder returns true if this is a placeholder run.
func (r *Run) IsPlaceholder() bool {
	return r.Placeholder >= 0
}

// Link returns the index of the first link range covering the run,
// or -1 if there is none.
func (r *Run) Link() int {
	if len(r.Links) == 0 {
		return -1
	}
	return r.Links[0]
}

func (r *Run) String() string {
	if r.IsPlaceholder() {
		return fmt.Sprintf("%s placeholder: %d", r.Range, r.Placeholder)
	}
	return fmt.Sprintf("%s styles: %v paragraphs: %v links: %v", r.Range, r.Styles, r.Paragraphs, r.Links)
}

// Segment returns the runs for the given text. Every start and end of every
// range, plus 0 and the length of the source, is a breakpoint, and each
// non-empty interval between adjacent breakpoints becomes one run.
// A run exactly matching a placeholder is a placeholder run. Empty text
// produces a single empty run so that there is always at least one.
//
// Malformed ranges are repaired rather than rejected: see [Sanitize].
// The text is not modified.
func Segment(tx *rich.Text) []Run {
	n := len(tx.Source)
	sn := Sanitize(tx)

	starts := make(map[int][]event)
	ends := make(map[int][]event)
	bps := []int{0, n}
	add := func(kind kinds, rgs []textpos.Range) {
		for i, rg := range rgs {
			if rg.Start < 0 {
				continue
			}
			bps = append(bps, rg.Start, rg.End)
			if rg.IsEmpty() {
				continue
			}
			starts[rg.Start] = append(starts[rg.Start], event{kind, i})
			ends[rg.End] = append(ends[rg.End], event{kind, i})
		}
	}
	add(styleKind, sn.Styles)
	add(paragraphKind, sn.Paragraphs)
	add(linkKind, sn.Links)
	phAt := make(map[int]int)
	for i, rg := range sn.Placeholders {
		if rg.Start < 0 {
			continue
		}
		bps = append(bps, rg.Start, rg.End)
		phAt[rg.Start] = i
	}
	slices.Sort(bps)
	bps = slices.Compact(bps)

	var active [numKinds][]int
	runs := make([]Run, 0, len(bps))
	for bi, a := range bps {
		for _, ev := range ends[a] {
			if i, found := slices.BinarySearch(active[ev.kind], ev.index); found {
				active[ev.kind] = slices.Delete(active[ev.kind], i, i+1)
			}
		}
		for _, ev := range starts[a] {
			if i, found := slices.BinarySearch(active[ev.kind], ev.index); !found {
				active[ev.kind] = slices.Insert(active[ev.kind], i, ev.index)
			}
		}
		if bi+1 == len(bps) {
			break
		}
		b := bps[bi+1]
		if a == b {
			continue
		}
		rn := Run{Range: textpos.R(a, b), Placeholder: -1}
		if pi, ok := phAt[a]; ok && b == a+1 {
			rn.Placeholder = pi
		}
		rn.Styles = clone(active[styleKind])
		rn.Paragraphs = clone(active[paragraphKind])
		rn.Links = clone(active[linkKind])
		for _, si := range rn.Styles {
			rn.Style = rn.Style.Merge(tx.Styles[si].Style)
		}
		for _, pi := range rn.Paragraphs {
			rn.Paragraph = rn.Paragraph.Merge(tx.Paragraphs[pi].Paragraph)
		}
		runs = append(runs, rn)
	}
	if len(runs) == 0 {
		runs = append(runs, Run{Range: textpos.R(0, 0), Placeholder: -1})
	}
	return runs
}

type kinds int

const (
	styleKind kinds = iota
	paragraphKind
	linkKind
	numKinds
)

// event is the start or end of the range with the given index.
type event struct {
	kind  kinds
	index int
}

// clone returns a copy of the active set, or nil if it is empty.
func clone(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}
