// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"log/slog"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/segment"
	"cogentcore.org/textlayout/text/text"
	"github.com/go-text/typesetting/segmenter"
)

// Build resolves the segment runs of the given text into measured [Run]s.
// Text runs get their style merged on top of the default font of the
// text style, resolved into a [Font] and [Paint], and are measured per
// grapheme. Placeholder runs are sized by pm, which defaults to
// [IntrinsicSize]; non-positive or invalid sizes become 0.
func Build(tx *rich.Text, runs []segment.Run, m Measurer, pm PlaceholderMeasurer, tsty *text.Style) []Run {
	if pm == nil {
		pm = IntrinsicSize
	}
	out := make([]Run, len(runs))
	for si := range runs {
		sr := &runs[si]
		sty := tsty.Resolve(sr.Style)
		rn := &out[si]
		*rn = Run{Span: si, Range: sr.Range, Placeholder: sr.Placeholder, Links: sr.Links, Paragraph: tsty.Paragraph(sr.Paragraph)}
		rn.Font = NewFont(&sty, m)
		rn.Paint = NewPaint(&sty)
		rn.Metrics = m.Metrics(&rn.Font)
		if sr.IsPlaceholder() {
			w, h := placeholderSize(tx, sr.Placeholder, pm)
			rn.Width = w
			rn.Bounds = math32.B2(0, 0, w, h)
			rn.Clusters = []int{sr.Range.Start}
			rn.Offsets = []float32{w}
			continue
		}
		measureRun(rn, tx.Slice(sr.Range), m)
	}
	return out
}

// placeholderSize returns the sanitized size of the given placeholder.
func placeholderSize(tx *rich.Text, pi int, pm PlaceholderMeasurer) (w, h float32) {
	ph := tx.Placeholders[pi].Placeholder
	w, h = pm(ph)
	if !(w > 0) || !(h > 0) || !math32.IsFinite(w) || !math32.IsFinite(h) {
		slog.Debug("shaped: invalid placeholder size", "id", ph.ID, "width", w, "height", h)
	}
	return math32.NonNegative(w), math32.NonNegative(h)
}

// measureRun sets the grapheme clusters and offsets of the given text run.
// Graphemes are measured individually and then scaled so that the last
// offset equals the width of the whole run, which includes kerning.
// Control characters such as newlines have no advance.
func measureRun(rn *Run, txt []rune, m Measurer) {
	if len(txt) == 0 {
		return
	}
	starts := Graphemes(txt)
	ng := len(starts)
	rn.Clusters = make([]int, ng)
	rn.Offsets = make([]float32, ng)
	ctl := make([]bool, ng)
	visible := make([]rune, 0, len(txt))
	var sum float32
	for k, st := range starts {
		ed := len(txt)
		if k+1 < ng {
			ed = starts[k+1]
		}
		rn.Clusters[k] = rn.Range.Start + st
		g := txt[st:ed]
		ctl[k] = isControl(g)
		if !ctl[k] {
			visible = append(visible, g...)
			sum += math32.NonNegative(m.RunWidth(g, &rn.Font))
		}
		rn.Offsets[k] = sum
	}
	var whole, scale float32
	if sum > 0 {
		whole = math32.NonNegative(m.RunWidth(visible, &rn.Font))
		scale = whole / sum
	}
	var spacing float32
	for k := range rn.Offsets {
		if !ctl[k] {
			spacing += rn.Font.LetterSpacing
		}
		rn.Offsets[k] = rn.Offsets[k]*scale + spacing
	}
	if sum > 0 {
		rn.Offsets[ng-1] = whole + spacing
	}
	rn.Width = rn.Offsets[ng-1]
}

// isControl returns true if the grapheme is made of line or paragraph
// control characters, which have no advance.
func isControl(g []rune) bool {
	for _, r := range g {
		switch r {
		case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		default:
			return false
		}
	}
	return len(g) > 0
}

// Graphemes returns the start index of each grapheme cluster in the given text.
func Graphemes(txt []rune) []int {
	var seg segmenter.Segmenter
	seg.Init(txt)
	it := seg.GraphemeIterator()
	var starts []int
	for it.Next() {
		starts = append(starts, it.Grapheme().Offset)
	}
	return starts
}

// graphemeEnd returns the end of grapheme k, given the grapheme
// start positions of a run that ends at end.
func graphemeEnd(clusters []int, k, end int) int {
	if k+1 < len(clusters) {
		return clusters[k+1]
	}
	return end
}

// Breaks returns the positions in the given text at which a line may be
// broken, according to the Unicode line breaking algorithm, as a set
// indexed by rune position in [0, len(txt)].
func Breaks(txt []rune) []bool {
	brk := make([]bool, len(txt)+1)
	if len(txt) == 0 {
		return brk
	}
	var seg segmenter.Segmenter
	seg.Init(txt)
	it := seg.LineIterator()
	for it.Next() {
		ln := it.Line()
		brk[ln.Offset+len(ln.Text)] = true
	}
	return brk
}
