// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/textpos"
)

// SelectRegion adds the selection to given region of runes from
// the original source runes. Use SelectReset to clear first if desired.
// Selections are the only state of a Lines that is modified after
// layout, by its owner.
func (ls *Lines) SelectRegion(r textpos.Range) {
	nr := ls.Source.Len()
	r = r.Intersect(textpos.R(0, nr))
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		lr := r.Intersect(ln.SourceRange)
		if lr.Len() > 0 {
			ln.Selections = append(ln.Selections, lr)
		}
	}
}

// SelectReset removes all existing selected regions.
func (ls *Lines) SelectReset() {
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		ln.Selections = nil
	}
}

// RuneAtPoint returns the source index of the rune nearest to the given
// point: positions beyond the start or end of a line return its first
// or last rune. Unlike [Lines.HitTest], there is no miss. It returns -1
// if there is no text.
func (ls *Lines) RuneAtPoint(pt math32.Vector2) int {
	li := ls.LineAt(pt.Y)
	if li < 0 || ls.Source.Len() == 0 {
		return -1
	}
	ln := &ls.Lines[li]
	rg := ln.SourceRange
	if rg.IsEmpty() {
		return min(rg.Start, ls.Source.Len()-1)
	}
	if pt.X < ln.Left {
		return rg.Start
	}
	if pt.X >= ln.Right() {
		return rg.End - 1
	}
	rn := &ln.Runs[ln.RunAt(pt.X)]
	if k := rn.GraphemeAt(pt.X - rn.Bounds.Min.X); k >= 0 && k < len(rn.Clusters) {
		return rn.Clusters[k]
	}
	return min(max(rn.Range.Start, rg.Start), rg.End-1)
}

// RuneBounds returns the bounding box of the grapheme containing the given
// source rune index, spanning the height of its line. It returns false
// if the rune is not laid out, e.g., because it was truncated.
func (ls *Lines) RuneBounds(ri int) (math32.Box2, bool) {
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		if !ln.SourceRange.Contains(ri) {
			continue
		}
		for rii := range ln.Runs {
			rn := &ln.Runs[rii]
			k := rn.GraphemeOf(ri)
			if k < 0 {
				continue
			}
			x0 := rn.Bounds.Min.X + rn.GraphemeStart(k)
			x1 := rn.Bounds.Min.X + rn.Offsets[k]
			return math32.B2(x0, ln.Top, x1, ln.Top+ln.Height), true
		}
	}
	return math32.Box2{}, false
}

// WordAt returns the range of the word at the given point.
func (ls *Lines) WordAt(pt math32.Vector2) textpos.Range {
	ri := ls.RuneAtPoint(pt)
	if ri < 0 {
		return textpos.Range{}
	}
	return textpos.WordAt(ls.Source.Source, ri)
}
