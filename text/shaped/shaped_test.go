// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped_test

import (
	"testing"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	. "cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers/shapedmono"
	"cogentcore.org/textlayout/text/segment"
	"cogentcore.org/textlayout/text/text"
	"cogentcore.org/textlayout/text/textpos"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

// testStyle returns a text style with a 10 dot monospace default font.
func testStyle() *text.Style {
	tsty := text.NewStyle()
	tsty.Font.SetSize(10).SetFamily("monospace")
	return tsty
}

// testMeasurer returns a measurer where each character is as wide as
// the font size, with an ascent of 0.8 and descent of 0.2 of the size.
func testMeasurer() *shapedmono.Measurer {
	m := shapedmono.New()
	m.Advance = 1
	return m
}

// RunTest lays out the given text with the test measurer and style,
// which can be modified by the optional function, and calls the test function.
func RunTest(t *testing.T, tx *rich.Text, cons text.Constraints, f func(ls *Lines), styler ...func(tsty *text.Style)) {
	t.Helper()
	tsty := testStyle()
	for _, st := range styler {
		st(tsty)
	}
	m := testMeasurer()
	runs := Build(tx, segment.Segment(tx), m, nil, tsty)
	ls := Wrap(tx, runs, cons, m, tsty)
	require.NotEmpty(t, ls.Lines)
	f(ls)
}

func TestWrap(t *testing.T) {
	RunTest(t, rich.NewPlainText("hello world foo"), text.NewConstraints(60), func(ls *Lines) {
		assert.Equal(t, []string{"hello ", "world ", "foo"}, ls.Text())
		assert.False(t, ls.Truncated)
		assert.False(t, ls.Overflow)
		for li := range ls.Lines {
			ln := &ls.Lines[li]
			assert.Equal(t, li, ln.Index)
			assert.Equal(t, float32(li)*(10+LineSlack), ln.Top)
			assert.Equal(t, float32(10), ln.Height)
			assert.Equal(t, ln.Top+8, ln.Baseline)
		}
		assert.Equal(t, float32(60), ls.Lines[0].Width)
		assert.Equal(t, float32(50), ls.Lines[0].VisibleWidth)
		assert.Equal(t, textpos.R(0, 6), ls.Lines[0].SourceRange)
		assert.Equal(t, math32.Vec2(50, 32), ls.Size)
	})
}

func TestWrapLongWord(t *testing.T) {
	RunTest(t, rich.NewPlainText("ab abcdefgh"), text.NewConstraints(40), func(ls *Lines) {
		assert.Equal(t, []string{"ab ", "abcd", "efgh"}, ls.Text())
	})
}

func TestNoSoftWrap(t *testing.T) {
	cons := text.NewConstraints(20)
	cons.SoftWrap = false
	RunTest(t, rich.NewPlainText("one two\nthree"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"one two\n", "three"}, ls.Text())
		assert.True(t, ls.Overflow)
		assert.False(t, ls.Truncated)
		assert.Equal(t, float32(20), ls.Size.X)
	})
}

func TestMultiRuneGraphemes(t *testing.T) {
	RunTest(t, rich.NewPlainText("e\u0301 a\u0301\r\nb"), text.Unbounded(), func(ls *Lines) {
		assert.Equal(t, []string{"e\u0301 a\u0301\r\n", "b"}, ls.Text())
	})
	cons := text.NewConstraints(30)
	RunTest(t, rich.NewPlainText("e\u0301e\u0301 xy"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"e\u0301e\u0301 ", "xy"}, ls.Text())
	})
}

func TestNewlines(t *testing.T) {
	RunTest(t, rich.NewPlainText("a\nb\n"), text.Unbounded(), func(ls *Lines) {
		require.Len(t, ls.Lines, 3)
		assert.Equal(t, []string{"a\n", "b\n", ""}, ls.Text())
		last := ls.Lines[2]
		assert.Empty(t, last.Runs)
		assert.Equal(t, float32(10), last.Height)
		assert.Equal(t, textpos.R(4, 4), last.SourceRange)
		assert.Equal(t, float32(32), ls.Size.Y)
	})
}

func TestZeroWidth(t *testing.T) {
	RunTest(t, rich.NewPlainText("abc"), text.NewConstraints(0), func(ls *Lines) {
		assert.Equal(t, []string{"a", "b", "c"}, ls.Text())
		assert.Equal(t, float32(0), ls.Size.X)
		assert.True(t, ls.Overflow)
	})
}

func TestTruncateEllipsis(t *testing.T) {
	cons := text.NewConstraints(50)
	cons.MaxLines = 1
	cons.Overflow = text.Ellipsis
	RunTest(t, rich.NewPlainText("abcdefghij"), cons, func(ls *Lines) {
		require.Len(t, ls.Lines, 1)
		assert.True(t, ls.Truncated)
		ln := ls.Lines[0]
		assert.True(t, ln.Ellipsis)
		assert.Equal(t, []string{"abcd…"}, ls.Text())
		assert.LessOrEqual(t, ln.Width, float32(50))
		ell := ln.Runs[len(ln.Runs)-1]
		assert.True(t, ell.Ellipsis)
		assert.Equal(t, textpos.R(4, 4), ell.Range)
		assert.Equal(t, 0, ell.Span)
	})
}

func TestTruncateMargin(t *testing.T) {
	cons := text.NewConstraints(50)
	cons.MaxLines = 1
	cons.Overflow = text.Ellipsis
	cons.ReservedTrailingMargin = 20
	RunTest(t, rich.NewPlainText("abcdefghij"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"ab…"}, ls.Text())
		assert.LessOrEqual(t, ls.Lines[0].Width+20, float32(50))
	})

	cons.Overflow = text.Clip
	RunTest(t, rich.NewPlainText("abcdefghij"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"abc"}, ls.Text())
		assert.True(t, ls.Truncated)
	})
}

func TestTruncateWords(t *testing.T) {
	cons := text.NewConstraints(80)
	cons.MaxLines = 2
	cons.Overflow = text.Ellipsis
	RunTest(t, rich.NewPlainText("one two three four five"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"one two ", "three…"}, ls.Text())
		assert.True(t, ls.Lines[1].Ellipsis)
		assert.False(t, ls.Lines[0].Ellipsis)
	})
}

func TestTruncateNothingFits(t *testing.T) {
	cons := text.NewConstraints(5)
	cons.MaxLines = 1
	cons.Overflow = text.Ellipsis
	RunTest(t, rich.NewPlainText("abc"), cons, func(ls *Lines) {
		require.Len(t, ls.Lines, 1)
		assert.Equal(t, []string{"…"}, ls.Text())
		assert.True(t, ls.Truncated)
	})
}

func TestClip(t *testing.T) {
	cons := text.NewConstraints(30)
	cons.MaxLines = 2
	RunTest(t, rich.NewPlainText("abcdefghij"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"abc", "def"}, ls.Text())
		assert.True(t, ls.Truncated)
		assert.False(t, ls.Lines[1].Ellipsis)
	})

	cons.MaxLines = 4
	RunTest(t, rich.NewPlainText("abcdefghij"), cons, func(ls *Lines) {
		assert.Len(t, ls.Lines, 4)
		assert.False(t, ls.Truncated)
	})

	cons.MaxLines = 1
	for _, src := range []string{"abc\n", "abc\ndef"} {
		RunTest(t, rich.NewPlainText(src), cons, func(ls *Lines) {
			assert.Equal(t, []string{"abc"}, ls.Text())
			assert.True(t, ls.Truncated)
		})
	}
}

func TestMaxHeightEllipsis(t *testing.T) {
	cons := text.NewConstraints(40)
	cons.MaxHeight = 25
	cons.Overflow = text.Ellipsis
	RunTest(t, rich.NewPlainText("aaa bbb ccc"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"aaa ", "bbb…"}, ls.Text())
		assert.True(t, ls.Truncated)
		assert.Equal(t, float32(21), ls.Size.Y)
	})

	cons.Overflow = text.Clip
	RunTest(t, rich.NewPlainText("aaa bbb ccc"), cons, func(ls *Lines) {
		assert.Len(t, ls.Lines, 3)
		assert.Equal(t, float32(25), ls.Size.Y)
		assert.True(t, ls.Overflow)
	})
}

func TestNoSoftWrapEllipsis(t *testing.T) {
	cons := text.NewConstraints(40)
	cons.SoftWrap = false
	cons.Overflow = text.Ellipsis
	RunTest(t, rich.NewPlainText("abcdef\nxy"), cons, func(ls *Lines) {
		assert.Equal(t, []string{"abc…", "xy"}, ls.Text())
		assert.True(t, ls.Truncated)
	})
}

func TestEmpty(t *testing.T) {
	RunTest(t, rich.NewPlainText(""), text.NewConstraints(100), func(ls *Lines) {
		require.Len(t, ls.Lines, 1)
		ln := ls.Lines[0]
		assert.Equal(t, float32(0), ln.Width)
		assert.Equal(t, float32(0), ln.Height)
		require.Len(t, ln.Runs, 1)
		assert.Equal(t, textpos.R(0, 0), ln.Runs[0].Range)
		assert.Equal(t, math32.Vector2{}, ls.Size)
		assert.Empty(t, ls.Placeholders)
		assert.False(t, ls.Truncated)
	})
}

func TestPlaceholderCentered(t *testing.T) {
	b := rich.NewBuilder()
	b.Append("ab").AppendPlaceholder("icon").Append("cd")
	tx := b.Build(map[string]rich.PlaceholderSize{"icon": {Width: 20, Height: 20}})
	RunTest(t, tx, text.Unbounded(), func(ls *Lines) {
		require.Len(t, ls.Placeholders, 1)
		ph := ls.Placeholders[0]
		assert.Equal(t, "icon", ph.ID)
		assert.Equal(t, 0, ph.Index)
		ln := ls.Lines[ph.Line]
		assert.InDelta(t, ln.Top+ln.Height/2, ph.Rect.Center().Y, 0.01)
		assert.Equal(t, math32.B2(20, 0, 40, 20), ph.Rect)
		assert.Equal(t, float32(20), ln.Height)
		assert.Equal(t, float32(13), ln.Baseline)
		assert.Equal(t, float32(60), ln.Width)
	})
}

func TestPlaceholderAligns(t *testing.T) {
	tests := []struct {
		align    rich.PlaceholderAligns
		height   float32
		baseline float32
	}{
		{rich.AlignBaseline, 22, 20},
		{rich.AlignTop, 20, 8},
		{rich.AlignBottom, 20, 18},
		{rich.AlignCenter, 20, 13},
		{rich.AlignTextTop, 20, 8},
		{rich.AlignTextBottom, 20, 18},
	}
	for _, test := range tests {
		tx := rich.NewText("\uFFFCx")
		tx.AddPlaceholder(0, rich.Placeholder{Width: 10, Height: 20, VerticalAlign: test.align})
		RunTest(t, tx, text.Unbounded(), func(ls *Lines) {
			require.Len(t, ls.Placeholders, 1, test.align.String())
			assert.Equal(t, test.height, ls.Lines[0].Height, test.align.String())
			assert.Equal(t, test.baseline, ls.Lines[0].Baseline, test.align.String())
			assert.Equal(t, math32.B2(0, 0, 10, 20), ls.Placeholders[0].Rect, test.align.String())
		})
	}
}

func TestPlaceholderInvalidSize(t *testing.T) {
	tx := rich.NewText("a\uFFFCb")
	tx.AddPlaceholder(1, rich.Placeholder{Width: -5, Height: math32.NaN()})
	RunTest(t, tx, text.Unbounded(), func(ls *Lines) {
		require.Len(t, ls.Placeholders, 1)
		assert.Equal(t, float32(0), ls.Placeholders[0].Rect.Size().X)
		assert.Equal(t, float32(0), ls.Placeholders[0].Rect.Size().Y)
		assert.Equal(t, float32(20), ls.Lines[0].Width)
	})
}

func TestParagraphs(t *testing.T) {
	tx := rich.NewPlainText("ab")
	var p rich.Paragraph
	p.SetAlign(rich.Center).SetLineHeight(30)
	tx.AddParagraph(0, 2, p)
	RunTest(t, tx, text.NewConstraints(100), func(ls *Lines) {
		ln := ls.Lines[0]
		assert.Equal(t, float32(40), ln.Left)
		assert.Equal(t, float32(30), ln.Height)
		assert.Equal(t, float32(18), ln.Baseline)
		assert.Equal(t, float32(100), ls.Size.X)
	})

	tx = rich.NewPlainText("aaa bbb")
	var in rich.Paragraph
	in.SetIndent(20)
	tx.AddParagraph(0, 7, in)
	RunTest(t, tx, text.NewConstraints(60), func(ls *Lines) {
		assert.Equal(t, []string{"aaa ", "bbb"}, ls.Text())
		assert.Equal(t, float32(20), ls.Lines[0].Left)
		assert.Equal(t, float32(0), ls.Lines[1].Left)
	})

	RunTest(t, rich.NewPlainText("ab\ncdef"), text.Unbounded(), func(ls *Lines) {
		assert.Equal(t, float32(20), ls.Lines[0].Left)
		assert.Equal(t, float32(0), ls.Lines[1].Left)
	}, func(tsty *text.Style) {
		tsty.Align = rich.End
	})

	RunTest(t, rich.NewPlainText("ab"), text.Unbounded(), func(ls *Lines) {
		assert.Equal(t, float32(15), ls.Lines[0].Height)
	}, func(tsty *text.Style) {
		tsty.LineSpacing = 1.5
	})
}

func TestMinLines(t *testing.T) {
	cons := text.Unbounded()
	cons.MinLines = 3
	RunTest(t, rich.NewPlainText("a"), cons, func(ls *Lines) {
		assert.Len(t, ls.Lines, 1)
		assert.Equal(t, float32(10), ls.LineHeight)
		assert.Equal(t, float32(32), ls.Size.Y)
	})
}

func TestStyledRuns(t *testing.T) {
	tx := rich.NewPlainText("abcdef")
	tx.AddStyle(0, 3, *rich.NewStyle().SetSize(20).SetFamily("nope").SetColor(colornames.Red))
	tx.AddStyle(3, 6, *rich.NewStyle().SetLetterSpacing(0.1).SetDecoration(rich.Underline))
	RunTest(t, tx, text.Unbounded(), func(ls *Lines) {
		ln := ls.Lines[0]
		require.Len(t, ln.Runs, 2)
		big := ln.Runs[0]
		assert.Equal(t, "monospace", big.Font.Family)
		assert.Equal(t, float32(20), big.Font.Size)
		assert.Equal(t, colornames.Red, big.Paint.Color)
		assert.Equal(t, float32(60), big.Width)
		spaced := ln.Runs[1]
		assert.Equal(t, float32(33), spaced.Width)
		assert.Equal(t, []float32{11, 22, 33}, spaced.Offsets)
		assert.True(t, spaced.Paint.Decoration.HasFlag(rich.Underline))
		assert.Equal(t, float32(20), ln.Height)
		assert.Equal(t, float32(16), ln.Baseline)
		assert.Equal(t, math32.B2(60, 0, 93, 20), spaced.Bounds)
	})
}

func TestLinks(t *testing.T) {
	b := rich.NewBuilder()
	b.Append("see the ")
	b.PushLink(rich.Link{ID: "docs", URL: "https://example.com/docs"})
	b.Append("docs")
	b.Pop()
	b.Append(" here")
	tx := b.Build(nil)
	RunTest(t, tx, text.Unbounded(), func(ls *Lines) {
		hit := ls.HitTest(math32.Vec2(85, 5))
		assert.Equal(t, 0, hit.Link)
		assert.Equal(t, "docs", hit.LinkID)
		assert.Equal(t, 8, hit.Rune)
		assert.Equal(t, 1, hit.Span)

		hit = ls.HitTest(math32.Vec2(15, 5))
		assert.Equal(t, -1, hit.Link)
		assert.Equal(t, 0, hit.Span)

		require.Equal(t, 1, ls.Links.Len())
		lr := ls.Links.ValueByIndex(0)
		assert.Equal(t, "https://example.com/docs", lr.URL)
		assert.Equal(t, []math32.Box2{math32.B2(80, 0, 120, 10)}, lr.Rects)
		found, ok := ls.LinkAt(math32.Vec2(100, 5))
		assert.True(t, ok)
		assert.Equal(t, "docs", found.ID)
		_, ok = ls.LinkAt(math32.Vec2(10, 5))
		assert.False(t, ok)
	})

	tx = rich.NewPlainText("aaa bbb")
	tx.AddLink(0, 7, rich.Link{ID: "all"})
	tx.AddStyle(2, 5, *rich.NewStyle().SetWeight(rich.Bold))
	RunTest(t, tx, text.NewConstraints(40), func(ls *Lines) {
		lr, ok := ls.Links.ValueByKeyTry(0)
		require.True(t, ok)
		assert.Equal(t, []math32.Box2{math32.B2(0, 0, 40, 10), math32.B2(0, 11, 30, 21)}, lr.Rects)
	})
}

func TestHitRoundTrip(t *testing.T) {
	b := rich.NewBuilder()
	b.PushStyle(*rich.NewStyle().SetColor(colornames.Red))
	b.Append("The quick ")
	b.PushStyle(*rich.NewStyle().SetSize(14))
	b.Append("brown fox ")
	b.Pop()
	b.AppendPlaceholder("img")
	b.PushLink(rich.Link{ID: "lazy"})
	b.Append(" jumps over the lazy dog")
	tx := b.Build(map[string]rich.PlaceholderSize{"img": {Width: 16, Height: 24}})
	RunTest(t, tx, text.NewConstraints(90), func(ls *Lines) {
		n := 0
		for li := range ls.Lines {
			ln := &ls.Lines[li]
			for ri := range ln.Runs {
				rn := &ln.Runs[ri]
				if rn.Width == 0 {
					continue
				}
				n++
				hit := ls.HitTest(rn.Bounds.Center())
				assert.Equal(t, rn.Span, hit.Span, "line %d run %d", li, ri)
				assert.Equal(t, li, hit.Line)
				assert.Equal(t, rn.Placeholder, hit.Placeholder)
				assert.Equal(t, rn.Link(), hit.Link)
			}
		}
		assert.Greater(t, n, 4)
	})
}

func TestHitMiss(t *testing.T) {
	RunTest(t, rich.NewPlainText("hello world"), text.NewConstraints(60), func(ls *Lines) {
		require.Len(t, ls.Lines, 2)
		assert.True(t, ls.HitTest(math32.Vec2(55, 15)).IsMiss())
		assert.Equal(t, 1, ls.HitTest(math32.Vec2(55, 15)).Line)
		assert.True(t, ls.HitTest(math32.Vec2(-1, 5)).IsMiss())

		// out of range y uses the first and last lines
		hit := ls.HitTest(math32.Vec2(5, -100))
		assert.Equal(t, 0, hit.Rune)
		hit = ls.HitTest(math32.Vec2(5, 1000))
		assert.Equal(t, 6, hit.Rune)

		// the slack after a line belongs to it
		assert.Equal(t, 0, ls.LineAt(10.5))
		assert.Equal(t, 1, ls.LineAt(11))
	})
}

func TestRegions(t *testing.T) {
	RunTest(t, rich.NewPlainText("hello world"), text.NewConstraints(60), func(ls *Lines) {
		assert.Equal(t, 2, ls.RuneAtPoint(math32.Vec2(25, 5)))
		assert.Equal(t, 0, ls.RuneAtPoint(math32.Vec2(-10, 5)))
		assert.Equal(t, 10, ls.RuneAtPoint(math32.Vec2(200, 15)))

		bb, ok := ls.RuneBounds(7)
		assert.True(t, ok)
		assert.Equal(t, math32.B2(10, 11, 20, 21), bb)
		_, ok = ls.RuneBounds(50)
		assert.False(t, ok)

		assert.Equal(t, textpos.R(6, 11), ls.WordAt(math32.Vec2(15, 15)))

		ls.SelectRegion(textpos.R(3, 8))
		assert.Equal(t, []textpos.Range{{Start: 3, End: 6}}, ls.Lines[0].Selections)
		assert.Equal(t, []textpos.Range{{Start: 6, End: 8}}, ls.Lines[1].Selections)
		ls.SelectReset()
		assert.Nil(t, ls.Lines[0].Selections)
	})
}

func TestUpdateStyle(t *testing.T) {
	mk := func(c rich.Style) *rich.Text {
		tx := rich.NewPlainText("some text")
		tx.AddStyle(0, 4, c)
		return tx
	}
	red := mk(*rich.NewStyle().SetColor(colornames.Red))
	blue := mk(*rich.NewStyle().SetColor(colornames.Blue))
	require.True(t, red.LayoutEqual(blue))
	RunTest(t, red, text.Unbounded(), func(ls *Lines) {
		nls := ls.UpdateStyle(blue, testStyle())
		assert.Equal(t, colornames.Blue, nls.Lines[0].Runs[0].Paint.Color)
		assert.Equal(t, colornames.Red, ls.Lines[0].Runs[0].Paint.Color)
		assert.Same(t, blue, nls.Source)
		assert.Equal(t, ls.Size, nls.Size)
	})
}

func TestUpdateStyleEllipsis(t *testing.T) {
	mk := func(c1, c2 rich.Style) *rich.Text {
		tx := rich.NewPlainText("abcdefghij")
		tx.AddStyle(0, 4, c1)
		tx.AddStyle(4, 10, c2)
		return tx
	}
	old := mk(*rich.NewStyle().SetColor(colornames.Red), *rich.NewStyle().SetColor(colornames.Blue))
	nw := mk(*rich.NewStyle().SetColor(colornames.Green), *rich.NewStyle().SetColor(colornames.Yellow))
	cons := text.NewConstraints(50)
	cons.MaxLines = 1
	cons.Overflow = text.Ellipsis
	var fresh *Lines
	RunTest(t, nw, cons, func(ls *Lines) { fresh = ls })
	RunTest(t, old, cons, func(ls *Lines) {
		require.True(t, ls.Truncated)
		runs := ls.Lines[0].Runs
		ell := runs[len(runs)-1]
		require.True(t, ell.Ellipsis)
		assert.Equal(t, colornames.Red, ell.Paint.Color)

		nls := ls.UpdateStyle(nw, testStyle())
		nruns := nls.Lines[0].Runs
		fruns := fresh.Lines[0].Runs
		require.Len(t, nruns, len(fruns))
		for i := range nruns {
			assert.Equal(t, fruns[i].Paint, nruns[i].Paint)
		}
		assert.Equal(t, colornames.Green, nruns[len(nruns)-1].Paint.Color)
	})
}

func TestIdempotent(t *testing.T) {
	b := rich.NewBuilder()
	b.Append("Idempotent layout ")
	b.PushStyle(*rich.NewStyle().SetWeight(rich.Bold).SetSize(12))
	b.Append("with styles, ")
	b.PushLink(rich.Link{ID: "l"})
	b.Append("links")
	b.PopTo(0)
	b.AppendPlaceholder("p")
	b.Append(" and placeholders\nover several lines.")
	tx := b.Build(map[string]rich.PlaceholderSize{"p": {Width: 12, Height: 12}})
	cons := text.NewConstraints(100)
	cons.MaxLines = 4
	cons.Overflow = text.Ellipsis
	cons.ReservedTrailingMargin = 10

	var first *Lines
	RunTest(t, tx, cons, func(ls *Lines) { first = ls })
	RunTest(t, tx, cons, func(ls *Lines) {
		assert.Empty(t, cmp.Diff(first, ls))
	})
}
