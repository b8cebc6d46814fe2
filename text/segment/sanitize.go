// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"log/slog"

	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/textpos"
)

// Ranges are the sanitized ranges of a [rich.Text], parallel to its
// range slices so that indexes are preserved. A dropped range has
// a Start of -1.
type Ranges struct {
	Styles       []textpos.Range
	Paragraphs   []textpos.Range
	Links        []textpos.Range
	Placeholders []textpos.Range
}

// Sanitize returns the repaired ranges of the given text:
// indexes are clamped to [0, len], reversed ranges are swapped,
// placeholders are normalized to length 1, and a placeholder at
// the end of the text or at a position already taken by an earlier
// placeholder is dropped. Each repair is logged at debug level.
func Sanitize(tx *rich.Text) Ranges {
	n := len(tx.Source)
	var sn Ranges
	sn.Styles = make([]textpos.Range, len(tx.Styles))
	for i, sr := range tx.Styles {
		sn.Styles[i] = clamp(sr.Range, n, "style", i)
	}
	sn.Paragraphs = make([]textpos.Range, len(tx.Paragraphs))
	for i, pr := range tx.Paragraphs {
		sn.Paragraphs[i] = clamp(pr.Range, n, "paragraph", i)
	}
	sn.Links = make([]textpos.Range, len(tx.Links))
	for i, lr := range tx.Links {
		sn.Links[i] = clamp(lr.Range, n, "link", i)
	}
	sn.Placeholders = make([]textpos.Range, len(tx.Placeholders))
	taken := make(map[int]bool)
	for i, pr := range tx.Placeholders {
		rg := clamp(pr.Range, n, "placeholder", i)
		if rg.Len() != 1 {
			slog.Debug("segment: placeholder range normalized to length 1", "index", i, "range", pr.Range)
			rg.End = rg.Start + 1
		}
		switch {
		case rg.End > n:
			slog.Debug("segment: placeholder beyond end of text dropped", "index", i, "range", pr.Range)
			rg = textpos.R(-1, -1)
		case taken[rg.Start]:
			slog.Debug("segment: duplicate placeholder dropped", "index", i, "range", pr.Range)
			rg = textpos.R(-1, -1)
		default:
			taken[rg.Start] = true
		}
		sn.Placeholders[i] = rg
	}
	return sn
}

func clamp(rg textpos.Range, n int, kind string, index int) textpos.Range {
	c := rg.Clamp(n)
	if c != rg {
		slog.Debug("segment: malformed range repaired", "kind", kind, "index", index, "range", rg, "repaired", c)
	}
	return c
}
