// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedmono"
	"cogentcore.org/textlayout/text/text"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func testNode() *Node {
	m := shapedmono.New()
	m.Advance = 1
	nd := NewNode(m)
	nd.Style.Font.SetSize(10).SetFamily("monospace")
	return nd
}

func colored(c rich.Style) *rich.Text {
	tx := rich.NewPlainText("hello world")
	tx.AddStyle(0, 5, c)
	return tx
}

func TestLayout(t *testing.T) {
	m := shapedmono.New()
	ls := Layout(nil, text.NewConstraints(100), m, nil, nil)
	require.Len(t, ls.Lines, 1)
	assert.Equal(t, math32.Vector2{}, ls.Size)

	tx := rich.NewPlainText("some text to lay out")
	a := Layout(tx, text.NewConstraints(100), m, nil, nil)
	b := Layout(tx, text.NewConstraints(100), m, nil, nil)
	assert.Empty(t, cmp.Diff(a, b))
	assert.Greater(t, len(a.Lines), 1)
}

func TestNode(t *testing.T) {
	nd := testNode()
	var got []*shaped.Lines
	nd.OnLayout = func(ls *shaped.Lines) { got = append(got, ls) }

	nd.SetValue(rich.NewPlainText("hello world")).SetConstraints(text.NewConstraints(60))
	assert.True(t, nd.NeedsLayout())
	ls := nd.Lines()
	assert.Equal(t, []string{"hello ", "world"}, ls.Text())
	assert.Len(t, got, 1)
	assert.Same(t, ls, nd.Lines())
	assert.Len(t, got, 1)

	// same constraints and value
	nd.SetConstraints(text.NewConstraints(60)).SetValue(rich.NewPlainText("hello world"))
	assert.False(t, nd.NeedsLayout())
	assert.Equal(t, 1, nd.Layouts)

	nd.SetConstraints(text.Unbounded())
	assert.Equal(t, []string{"hello world"}, nd.Lines().Text())
	assert.Equal(t, 2, nd.Layouts)
	assert.Len(t, got, 2)
	assert.Equal(t, math32.Vec2(110, 10), nd.Size())
	assert.Equal(t, 6, nd.HitTest(math32.Vec2(65, 5)).Rune)
}

func TestNodeRestyle(t *testing.T) {
	nd := testNode()
	calls := 0
	nd.OnLayout = func(ls *shaped.Lines) { calls++ }
	nd.SetValue(colored(*rich.NewStyle().SetColor(colornames.Red)))
	red := nd.Lines()
	assert.Equal(t, 1, calls)

	nd.SetValue(colored(*rich.NewStyle().SetColor(colornames.Blue)))
	assert.False(t, nd.NeedsLayout())
	blue := nd.Lines()
	assert.Equal(t, 1, nd.Layouts)
	assert.Equal(t, 2, calls)
	assert.NotSame(t, red, blue)
	assert.Equal(t, colornames.Red, red.Lines[0].Runs[0].Paint.Color)
	assert.Equal(t, colornames.Blue, blue.Lines[0].Runs[0].Paint.Color)

	nd.SetValue(colored(*rich.NewStyle().SetColor(colornames.Blue).SetSize(20)))
	assert.True(t, nd.NeedsLayout())
	assert.Equal(t, float32(20), nd.Lines().Lines[0].Height)
	assert.Equal(t, 2, nd.Layouts)
}

func TestNodeShadow(t *testing.T) {
	nd := testNode()
	tx := rich.NewPlainText("background layout")
	cons := text.NewConstraints(100)
	nd.SetValue(tx).SetConstraints(cons)
	est := <-nd.Shadow(tx, cons)
	ls := nd.Accept(est)
	assert.Same(t, est.Lines, ls)
	assert.Equal(t, 1, nd.Layouts)
	assert.False(t, nd.NeedsLayout())

	// value changed while the estimate was running
	ch := nd.Shadow(tx, cons)
	nd.SetValue(rich.NewPlainText("changed"))
	est = <-ch
	ls = nd.Accept(est)
	assert.NotSame(t, est.Lines, ls)
	assert.Equal(t, []string{"changed"}, ls.Text())
	assert.Equal(t, 2, nd.Layouts)

	// style changed while the estimate was running
	tx = nd.Value()
	ch = nd.Shadow(tx, cons)
	sty := *nd.Style
	sty.Font.SetSize(20)
	nd.SetStyle(&sty)
	est = <-ch
	assert.Equal(t, float32(10), est.Lines.Lines[0].Height)
	ls = nd.Accept(est)
	assert.NotSame(t, est.Lines, ls)
	assert.Equal(t, float32(20), ls.Lines[0].Height)
	assert.Equal(t, 3, nd.Layouts)
}

func TestWrapEstimate(t *testing.T) {
	nd := testNode()
	nd.SetValue(rich.NewPlainText("a fairly long piece of text that will be wrapped into a few lines"))
	ls := nd.WrapEstimate(math32.Vector2{})
	assert.Greater(t, len(ls.Lines), 1)
	assert.True(t, nd.NeedsLayout())
	assert.Equal(t, 0, nd.Layouts)
}
