// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/text"
	"cogentcore.org/textlayout/text/textpos"
)

// Wrap lays out the given runs, which must come from [Build] on the same
// text, into lines within the given constraints, using the given measurer
// for the ellipsis marker and the default line height.
//
// Lines are filled greedily, breaking at Unicode line break opportunities
// when soft wrapping, and always at newlines. A word that is wider than the
// line on its own is broken between graphemes, keeping at least one grapheme
// on each line. When the lines would exceed [text.Constraints.MaxLines], or
// with [text.Ellipsis] the maximum height, the content from the start of the
// last allowed line is wrapped again against the width less the reserved
// trailing margin, and for [text.Ellipsis] trailing graphemes are dropped
// until the ellipsis marker fits after them.
func Wrap(tx *rich.Text, runs []Run, cons text.Constraints, m Measurer, tsty *text.Style) *Lines {
	w := newWrapper(tx, runs, cons.Sanitize(), m, tsty)
	w.wrap()
	return w.finish()
}

// wrapStates are the states of the line filling state machine.
type wrapStates int32

const (
	// accumulating is placing items on the current line.
	accumulating wrapStates = iota

	// lineFull is when the current line has been closed.
	lineFull

	// ellipsizing is building the truncated final line.
	ellipsizing

	// done is when all lines have been made.
	done
)

// item is one grapheme of a run: the unit of line breaking.
type item struct {
	// run is the index of the run.
	run int

	// k is the grapheme index within the run.
	k int

	// start is the source index of the grapheme.
	start int

	// width is the advance of the grapheme.
	width float32

	// space is true for whitespace, which can hang past the end of a line.
	space bool

	// newline is true for a mandatory line break character.
	newline bool
}

// span is the range of items on a line.
type span struct {
	// start and end are the items [start, end) shown on the line.
	start, end int

	// next is the item that the following line starts with.
	next int

	// hard is true if the line ends with a newline.
	hard bool

	// ellipsis is true if an ellipsis follows the items.
	ellipsis bool
}

type wrapper struct {
	tx    *rich.Text
	runs  []Run
	cons  text.Constraints
	m     Measurer
	tsty  *text.Style
	items []item

	// prefix are the cumulative item widths: prefix[i] is the width of items [0, i).
	prefix []float32

	// breaks are the soft line break opportunities by source position.
	breaks []bool

	spans     []span
	lines     []Line
	truncated bool
}

func newWrapper(tx *rich.Text, runs []Run, cons text.Constraints, m Measurer, tsty *text.Style) *wrapper {
	w := &wrapper{tx: tx, runs: runs, cons: cons, m: m, tsty: tsty}
	w.breaks = Breaks(tx.Source)
	for ri := range runs {
		rn := &runs[ri]
		for k, st := range rn.Clusters {
			it := item{run: ri, k: k, start: st, width: rn.Offsets[k] - rn.GraphemeStart(k)}
			if !rn.IsPlaceholder() {
				g := tx.Slice(textpos.R(st, graphemeEnd(rn.Clusters, k, rn.Range.End)))
				it.space = isSpace(g)
				it.newline = isControl(g)
			}
			w.items = append(w.items, it)
		}
	}
	w.prefix = make([]float32, len(w.items)+1)
	for i, it := range w.items {
		w.prefix[i+1] = w.prefix[i] + it.width
	}
	return w
}

// wrap runs the state machine that fills the lines.
func (w *wrapper) wrap() {
	state := accumulating
	i := 0
	for state != done {
		switch state {
		case accumulating:
			sp := w.nextLine(i, w.cons.SoftWrap, w.avail(i))
			w.spans = append(w.spans, sp)
			w.lines = append(w.lines, w.makeLine(len(w.lines), sp))
			i = sp.next
			state = lineFull
		case lineFull:
			li := len(w.spans) - 1
			sp := &w.spans[li]
			if !w.cons.SoftWrap && w.cons.Overflow == text.Ellipsis && w.width(sp.start, sp.end) > w.avail(sp.start) {
				w.fitEllipsis(sp, w.avail(sp.start))
				w.lines[li] = w.makeLine(li, *sp)
				w.truncated = true
			}
			remaining := i < len(w.items) || (sp.hard && i == len(w.items))
			switch {
			case w.cons.Overflow == text.Ellipsis && li > 0 && w.height() > w.cons.MaxHeight:
				w.spans = w.spans[:li]
				w.lines = w.lines[:li]
				state = ellipsizing
			case w.cons.HasLineLimit() && len(w.spans) >= w.cons.MaxLines && remaining:
				state = ellipsizing
			case remaining:
				state = accumulating
			default:
				state = done
			}
		case ellipsizing:
			w.ellipsize()
			state = done
		}
	}
}

// nextLine returns the line starting at item i that fits within the
// given width. Without soft wrapping, lines only end at newlines.
func (w *wrapper) nextLine(i int, soft bool, width float32) span {
	sp := span{start: i}
	x := float32(0)
	lastBreak := -1
	j := i
	for j < len(w.items) {
		it := &w.items[j]
		if it.newline {
			j++
			sp.hard = true
			break
		}
		if soft && j > i && !it.space && x+it.width > width {
			if lastBreak > i {
				j = lastBreak
			}
			break
		}
		x += it.width
		j++
		if j < len(w.items) && w.breaks[w.items[j].start] {
			lastBreak = j
		}
	}
	sp.end, sp.next = j, j
	return sp
}

// ellipsize replaces the last line with a truncated version:
// the content from the start of the line is wrapped again within
// the width less the reserved trailing margin, and for the Ellipsis
// policy the ellipsis is added.
func (w *wrapper) ellipsize() {
	li := len(w.spans) - 1
	last := w.spans[li]
	width := w.avail(last.start) - w.cons.ReservedTrailingMargin
	sp := last
	if w.cons.Overflow == text.Ellipsis || w.cons.ReservedTrailingMargin > 0 {
		sp = w.nextLine(last.start, w.cons.SoftWrap, width)
	}
	sp.hard = false
	for sp.end > sp.start && w.items[sp.end-1].newline {
		sp.end--
	}
	if w.cons.Overflow == text.Ellipsis {
		w.fitEllipsis(&sp, width)
	} else if w.cons.ReservedTrailingMargin > 0 && w.width(sp.start, sp.end) > width {
		sp.end = max(w.fit(sp.start, sp.end, width, 0), min(sp.start+1, sp.end))
	}
	w.spans[li] = sp
	w.lines[li] = w.makeLine(li, sp)
	w.truncated = true
}

// fitEllipsis drops trailing items of the span until they fit within
// the given width together with the ellipsis, and adds the ellipsis.
func (w *wrapper) fitEllipsis(sp *span, width float32) {
	ell := w.ellipsisRun(*sp)
	sp.end = w.fit(sp.start, sp.end, width, ell.Width)
	sp.ellipsis = true
}

// fit returns the end of the longest prefix of items [s, e), without
// trailing whitespace, whose width plus extra is within the given width.
// It returns s if there is no such prefix.
func (w *wrapper) fit(s, e int, width, extra float32) int {
	e = w.trimSpace(s, e)
	for e > s && w.width(s, e)+extra > width {
		e = w.trimSpace(s, e-1)
	}
	return e
}

// trimSpace returns e moved back over any trailing whitespace in [s, e).
func (w *wrapper) trimSpace(s, e int) int {
	for e > s && w.items[e-1].space {
		e--
	}
	return e
}

// width returns the width of items [s, e).
func (w *wrapper) width(s, e int) float32 {
	return w.prefix[e] - w.prefix[s]
}

// paraStart returns true if item i starts a paragraph.
func (w *wrapper) paraStart(i int) bool {
	return i == 0 || (i <= len(w.items) && w.items[i-1].newline)
}

// contextRun returns the index of the run that provides the style
// for a line starting at item i, or -1 if there are no runs.
func (w *wrapper) contextRun(i int) int {
	switch {
	case i < len(w.items):
		return w.items[i].run
	case len(w.items) > 0:
		return w.items[len(w.items)-1].run
	case len(w.runs) > 0:
		return 0
	}
	return -1
}

// paragraph returns the paragraph properties for a line starting at item i.
func (w *wrapper) paragraph(i int) rich.Paragraph {
	if ri := w.contextRun(i); ri >= 0 {
		return w.runs[ri].Paragraph
	}
	return w.tsty.Paragraph(rich.Paragraph{})
}

// indent returns the indent of a line starting at item i.
func (w *wrapper) indent(i int) float32 {
	if !w.paraStart(i) {
		return 0
	}
	return w.paragraph(i).Indent
}

// avail returns the width available for a line starting at item i.
func (w *wrapper) avail(i int) float32 {
	return w.cons.MaxWidth - w.indent(i)
}

// height returns the total height of the lines so far.
func (w *wrapper) height() float32 {
	var h float32
	for li := range w.lines {
		h += w.lines[li].Height
	}
	return h + LineSlack*float32(max(len(w.lines)-1, 0))
}

// ellipsisRun returns the ellipsis run for a line with the given span,
// in the style of the last item that is shown on it.
func (w *wrapper) ellipsisRun(sp span) Run {
	ri := w.contextRun(max(sp.end-1, sp.start))
	var fn Font
	var paint Paint
	if ri >= 0 {
		fn, paint = w.runs[ri].Font, w.runs[ri].Paint
	} else {
		fn, paint = NewFont(&w.tsty.Font, w.m), NewPaint(&w.tsty.Font)
	}
	ell := Run{Span: -1, Placeholder: -1, Ellipsis: true, Marker: w.tsty.Ellipsis, Font: fn, Paint: paint}
	ell.Metrics = w.m.Metrics(&fn)
	mk := []rune(w.tsty.Ellipsis)
	ell.Width = math32.NonNegative(w.m.RunWidth(mk, &fn)) + fn.LetterSpacing*float32(len(Graphemes(mk)))
	ell.Offsets = []float32{ell.Width}
	return ell
}

// makeLine returns the line for the given span, with its runs
// and vertical metrics, but not yet positioned.
func (w *wrapper) makeLine(li int, sp span) Line {
	ln := Line{Index: li}
	for i := sp.start; i < sp.end; {
		ri := w.items[i].run
		j := i + 1
		for j < sp.end && w.items[j].run == ri {
			j++
		}
		ln.Runs = append(ln.Runs, w.runs[ri].Slice(w.items[i].k, w.items[j-1].k+1))
		i = j
	}
	at := len(w.tx.Source)
	if sp.start < len(w.items) {
		at = w.items[sp.start].start
	}
	ln.SourceRange = textpos.R(at, at)
	if len(ln.Runs) > 0 {
		ln.SourceRange = textpos.R(ln.Runs[0].Range.Start, ln.Runs[len(ln.Runs)-1].Range.End)
	}
	if len(w.items) == 0 && len(w.runs) > 0 {
		ln.Runs = append(ln.Runs, w.runs[0]) // the implicit empty run
	}
	ln.Width = w.width(sp.start, sp.end)
	ln.VisibleWidth = w.width(sp.start, w.trimSpace(sp.start, sp.end))
	if sp.ellipsis {
		ell := w.ellipsisRun(sp)
		at := len(w.tx.Source)
		if sp.end < len(w.items) {
			dropped := w.items[sp.end]
			at = dropped.start
			ell.Span = w.runs[dropped.run].Span
			ell.Links = w.runs[dropped.run].Links
		}
		ell.Range = textpos.R(at, at)
		ell.Clusters = []int{at}
		ln.Runs = append(ln.Runs, ell)
		ln.Ellipsis = true
		ln.Width += ell.Width
		ln.VisibleWidth += ell.Width
	}
	ln.Left = w.indent(sp.start)
	w.lineHeight(&ln, sp)
	return ln
}

// lineHeight sets the height and the baseline of the line, relative
// to the top of the line, and the vertical position of its placeholders.
// The text height is the paragraph line height if set, otherwise the
// largest font height on the line times the line spacing, with any
// extra space split evenly above and below.
func (w *wrapper) lineHeight(ln *Line, sp span) {
	if len(w.items) == 0 {
		return // empty text has an empty line
	}
	var asc, desc float32
	for ri := range ln.Runs {
		fm := ln.Runs[ri].Metrics
		asc = max(asc, fm.Ascent)
		desc = max(desc, fm.Descent)
	}
	if len(ln.Runs) == 0 {
		fm := w.runs[w.contextRun(max(sp.start-1, 0))].Metrics
		asc, desc = fm.Ascent, fm.Descent
	}
	natural := asc + desc
	ht := natural * w.tsty.LineSpacing
	if pa := w.paragraph(sp.start); pa.Set.Has(rich.ParaLineHeight) && pa.LineHeight > 0 {
		ht = pa.LineHeight
	}
	lead := ht - natural
	above, below := asc+lead/2, desc+lead/2

	// placeholders grow the line, in the order that keeps earlier
	// positions valid: baseline relative, edge relative, then centered.
	phs := make([]*Run, 0)
	for ri := range ln.Runs {
		if ln.Runs[ri].IsPlaceholder() {
			phs = append(phs, &ln.Runs[ri])
		}
	}
	align := func(rn *Run) rich.PlaceholderAligns {
		return w.tx.Placeholders[rn.Placeholder].Placeholder.VerticalAlign
	}
	center := (desc - asc) / 2 // text midpoint relative to baseline
	for _, rn := range phs {
		h := rn.Bounds.Size().Y
		switch align(rn) {
		case rich.AlignBaseline:
			above = max(above, h)
		case rich.AlignTextTop:
			below = max(below, h-asc)
		case rich.AlignTextBottom:
			above = max(above, h-desc)
		}
	}
	for _, rn := range phs {
		h := rn.Bounds.Size().Y
		switch align(rn) {
		case rich.AlignTop:
			below = max(below, h-above)
		case rich.AlignBottom:
			above = max(above, h-below)
		}
	}
	for _, rn := range phs {
		if h := rn.Bounds.Size().Y; align(rn) == rich.AlignTextCenter {
			above = max(above, h/2-center)
			below = max(below, center+h/2)
		}
	}
	for _, rn := range phs {
		if h := rn.Bounds.Size().Y; align(rn) == rich.AlignCenter {
			if extra := h/2 - (above+below)/2; extra > 0 {
				above += extra
				below += extra
			}
		}
	}
	ln.Height = above + below
	ln.Baseline = above
	for _, rn := range phs {
		h := rn.Bounds.Size().Y
		var y float32 // top relative to baseline
		switch align(rn) {
		case rich.AlignBaseline:
			y = -h
		case rich.AlignTextTop:
			y = -asc
		case rich.AlignTextBottom:
			y = desc - h
		case rich.AlignTop:
			y = -above
		case rich.AlignBottom:
			y = below - h
		case rich.AlignCenter:
			y = (below-above)/2 - h/2
		default:
			y = center - h/2
		}
		rn.Bounds = math32.B2(0, above+y, 0, above+y+h)
	}
}

// finish positions the lines and computes the overall results.
func (w *wrapper) finish() *Lines {
	ls := &Lines{Source: w.tx, Lines: w.lines, Truncated: w.truncated, Constraints: w.cons}
	ls.LineHeight = LineHeight(w.m, w.tsty)

	alignWidth := w.cons.MaxWidth
	nonStart := false
	if math32.IsInf(alignWidth, 1) {
		alignWidth = 0
		for li := range ls.Lines {
			ln := &ls.Lines[li]
			alignWidth = max(alignWidth, ln.Left+ln.VisibleWidth)
		}
	}
	var top float32
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		sp := w.spans[li]
		pa := w.paragraph(sp.start)
		if f := pa.Align.Factor(); f > 0 {
			nonStart = true
			if free := alignWidth - (ln.Left + ln.VisibleWidth); free > 0 {
				ln.Left += f * free
			}
		}
		ln.Top = top
		ln.Baseline += top
		x := ln.Left
		for ri := range ln.Runs {
			rn := &ln.Runs[ri]
			if rn.IsPlaceholder() {
				rn.Bounds = math32.B2(x, top+rn.Bounds.Min.Y, x+rn.Width, top+rn.Bounds.Max.Y)
				ph := w.tx.Placeholders[rn.Placeholder].Placeholder
				ls.Placeholders = append(ls.Placeholders, PlaceholderRect{Index: rn.Placeholder, ID: ph.ID, Line: li, Rect: rn.Bounds})
			} else {
				rn.Bounds = math32.B2(x, top, x+rn.Width, top+ln.Height)
			}
			x += rn.Width
		}
		vb := math32.B2(ln.Left, ln.Top, ln.Left+ln.VisibleWidth, ln.Top+ln.Height)
		if li == 0 {
			ls.Bounds = vb
		} else {
			ls.Bounds = ls.Bounds.Union(vb)
		}
		top += ln.Height + LineSlack
	}
	for _, ph := range ls.Placeholders {
		ls.Bounds = ls.Bounds.Union(ph.Rect)
	}

	last := &ls.Lines[len(ls.Lines)-1]
	height := last.Top + last.Height
	if n := w.cons.MinLines; n > 0 {
		height = max(height, float32(n)*ls.LineHeight+float32(n-1)*LineSlack)
	}
	width := ls.Bounds.Max.X
	if nonStart && !math32.IsInf(w.cons.MaxWidth, 1) {
		width = w.cons.MaxWidth
	}
	ls.Size = math32.Vec2(min(width, w.cons.MaxWidth), min(height, w.cons.MaxHeight))
	ls.Overflow = ls.Bounds.Max.X > ls.Size.X || ls.Bounds.Max.Y > ls.Size.Y || ls.Bounds.Min.Y < 0
	ls.Links = ls.linkRects()
	return ls
}

// isSpace returns true if the grapheme is whitespace.
func isSpace(g []rune) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(g) > 0
}
