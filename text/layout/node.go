// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"log/slog"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/text"
)

// Node holds a text value and its layout for the owner of the text,
// e.g., a text widget. Changes to the value or constraints invalidate
// the layout, which is redone on the next call to [Node.Lines].
// A new value that only differs in colors and other properties that
// do not affect layout is applied to the existing layout without
// laying it out again.
//
// A Node is used from a single goroutine, except that [Node.Shadow]
// lays out in the background, for the result to be handed back with
// [Node.Accept].
type Node struct {

	// Measurer measures the text.
	Measurer shaped.Measurer

	// PlaceholderMeasurer sizes placeholders; nil uses their intrinsic size.
	PlaceholderMeasurer shaped.PlaceholderMeasurer

	// Style is the default text style.
	Style *text.Style

	// OnLayout, if set, is called with the new layout each time
	// the layout is done or restyled.
	OnLayout func(ls *shaped.Lines)

	value       *rich.Text
	constraints text.Constraints
	lines       *shaped.Lines
	needsLayout bool

	// styleGen counts the calls to SetStyle, to detect estimates
	// that were laid out with an earlier style.
	styleGen int

	// Layouts is the number of full layouts that have been done.
	Layouts int
}

// Estimate is the result of a background layout from [Node.Shadow].
type Estimate struct {

	// Value is the text value that was laid out.
	Value *rich.Text

	// Constraints are the constraints that were used.
	Constraints text.Constraints

	// Lines is the layout.
	Lines *shaped.Lines

	styleGen int
}

// NewNode returns a new node using the given measurer,
// with an empty value and unbounded constraints.
func NewNode(m shaped.Measurer) *Node {
	return &Node{Measurer: m, Style: text.NewStyle(), value: rich.NewPlainText(""), constraints: text.Unbounded(), needsLayout: true}
}

// Value returns the current text value.
func (nd *Node) Value() *rich.Text {
	return nd.value
}

// Constraints returns the current constraints.
func (nd *Node) Constraints() text.Constraints {
	return nd.constraints
}

// NeedsLayout returns true if the layout is out of date.
func (nd *Node) NeedsLayout() bool {
	return nd.needsLayout || nd.lines == nil
}

// SetValue sets the text value. If the layout is current and the new
// value only differs in properties that do not affect layout, the
// layout is restyled right away; otherwise it is marked as needing layout.
func (nd *Node) SetValue(tx *rich.Text) *Node {
	if tx == nil {
		tx = rich.NewPlainText("")
	}
	switch {
	case nd.NeedsLayout():
		nd.needsLayout = true
	case tx.Equal(nd.value):
	case tx.LayoutEqual(nd.value):
		slog.Debug("layout: restyling", "len", tx.Len())
		nd.lines = nd.lines.UpdateStyle(tx, nd.Style)
		nd.notify()
	default:
		nd.needsLayout = true
	}
	nd.value = tx
	return nd
}

// SetConstraints sets the constraints, marking the layout as
// needing layout if they are different.
func (nd *Node) SetConstraints(cons text.Constraints) *Node {
	if cons != nd.constraints {
		nd.constraints = cons
		nd.needsLayout = true
	}
	return nd
}

// SetStyle sets the default text style, which always requires layout.
func (nd *Node) SetStyle(tsty *text.Style) *Node {
	nd.Style = tsty
	nd.styleGen++
	nd.needsLayout = true
	return nd
}

// Lines returns the layout of the current value, laying it out if needed.
func (nd *Node) Lines() *shaped.Lines {
	if nd.NeedsLayout() {
		nd.lines = Layout(nd.value, nd.constraints, nd.Measurer, nd.PlaceholderMeasurer, nd.Style)
		nd.needsLayout = false
		nd.Layouts++
		nd.notify()
	}
	return nd.lines
}

// Size returns the size of the current layout.
func (nd *Node) Size() math32.Vector2 {
	return nd.Lines().Size
}

// HitTest returns what is at the given point of the current layout.
func (nd *Node) HitTest(pt math32.Vector2) shaped.Hit {
	return nd.Lines().HitTest(pt)
}

// WrapEstimate returns the layout of the current value at a width that
// gives it a reasonable aspect ratio within the given content size,
// for a first sizing pass before the actual width is known.
// It does not change the node.
func (nd *Node) WrapEstimate(csz math32.Vector2) *shaped.Lines {
	est := shaped.WrapSizeEstimate(csz, nd.value.Len(), 1.618, nd.Style)
	cons := nd.constraints
	cons.MaxWidth = math32.Ceil(est.X)
	return Layout(nd.value, cons, nd.Measurer, nd.PlaceholderMeasurer, nd.Style)
}

// Shadow lays out the given value and constraints in the background,
// sending the result on the returned channel when done. The result
// is applied with [Node.Accept]. The node itself is not used by the
// background layout, but the measurer must be safe for concurrent use.
func (nd *Node) Shadow(tx *rich.Text, cons text.Constraints) <-chan Estimate {
	ch := make(chan Estimate, 1)
	m, pm := nd.Measurer, nd.PlaceholderMeasurer
	tsty := *nd.Style
	gen := nd.styleGen
	go func() {
		ch <- Estimate{Value: tx, Constraints: cons, Lines: Layout(tx, cons, m, pm, &tsty), styleGen: gen}
	}()
	return ch
}

// Accept uses the given background layout as the current layout if
// it is for the current value, constraints and style. Otherwise it is stale,
// and the current value is laid out again. It returns the current layout.
func (nd *Node) Accept(est Estimate) *shaped.Lines {
	if est.Lines == nil || !est.Value.Equal(nd.value) || est.Constraints != nd.constraints || est.styleGen != nd.styleGen {
		slog.Debug("layout: discarding stale estimate")
		nd.needsLayout = true
		return nd.Lines()
	}
	nd.lines = est.Lines
	nd.needsLayout = false
	nd.Layouts++
	nd.notify()
	return nd.lines
}

func (nd *Node) notify() {
	if nd.OnLayout != nil {
		nd.OnLayout(nd.lines)
	}
}
