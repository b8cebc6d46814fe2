// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/textlayout/base/ordmap"
	"cogentcore.org/textlayout/math32"
)

// LinkRects are the rectangles covering the laid out text of one link range,
// which are used for hit-testing links and for drawing focus indicators.
type LinkRects struct {

	// Index is the index of the link range in the source text.
	Index int

	// ID is the link identifier.
	ID string

	// URL is the link URL, if any.
	URL string `json:",omitempty"`

	// Rects has one rectangle for each line the link is on,
	// covering the runs of the link on that line.
	Rects []math32.Box2
}

// Contains returns true if the given point is within one of the rectangles.
func (lr *LinkRects) Contains(pt math32.Vector2) bool {
	for _, r := range lr.Rects {
		if r.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// linkRects computes the link rectangles for the laid out lines,
// ordered by link range index. Runs of a link that are adjacent on
// a line are merged into one rectangle.
func (ls *Lines) linkRects() *ordmap.Map[int, LinkRects] {
	byLink := make(map[int][]math32.Box2)
	lastLine := make(map[int]int)
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		for ri := range ln.Runs {
			rn := &ln.Runs[ri]
			if rn.Ellipsis {
				continue
			}
			bb := math32.B2(rn.Bounds.Min.X, ln.Top, rn.Bounds.Max.X, ln.Top+ln.Height)
			for _, lk := range rn.Links {
				rects := byLink[lk]
				if n := len(rects); n > 0 && lastLine[lk] == li && rects[n-1].Max.X >= bb.Min.X {
					rects[n-1] = rects[n-1].Union(bb)
				} else {
					byLink[lk] = append(rects, bb)
				}
				lastLine[lk] = li
			}
		}
	}
	om := ordmap.New[int, LinkRects]()
	for i, lr := range ls.Source.Links {
		rects, ok := byLink[i]
		if !ok {
			continue
		}
		om.Add(i, LinkRects{Index: i, ID: lr.Link.ID, URL: lr.Link.URL, Rects: rects})
	}
	return om
}

// LinkAt returns the link rectangles of the first link range that has
// a rectangle containing the given point, and false if there is none.
func (ls *Lines) LinkAt(pt math32.Vector2) (LinkRects, bool) {
	if ls.Links == nil {
		return LinkRects{}, false
	}
	for _, kv := range ls.Links.Order {
		if kv.Value.Contains(pt) {
			return kv.Value, true
		}
	}
	return LinkRects{}, false
}
