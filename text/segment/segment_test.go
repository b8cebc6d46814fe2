// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func ranges(runs []Run) []textpos.Range {
	rgs := make([]textpos.Range, len(runs))
	for i, r := range runs {
		rgs[i] = r.Range
	}
	return rgs
}

func TestSegmentOverlap(t *testing.T) {
	tx := rich.NewText("0123456789")
	tx.AddStyle(0, 5, *rich.NewStyle().SetColor(colornames.Red))
	tx.AddStyle(2, 8, *rich.NewStyle().SetColor(colornames.Blue))

	runs := Segment(tx)
	require.Equal(t, []textpos.Range{{Start: 0, End: 2}, {Start: 2, End: 5}, {Start: 5, End: 8}, {Start: 8, End: 10}}, ranges(runs))
	assert.Equal(t, colornames.Red, runs[0].Style.Color)
	assert.Equal(t, colornames.Blue, runs[1].Style.Color)
	assert.Equal(t, []int{0, 1}, runs[1].Styles)
	assert.Equal(t, []int{1}, runs[2].Styles)
	assert.Empty(t, runs[3].Styles)
	assert.False(t, runs[3].Style.Set.Has(rich.PropFill))
}

func TestSegmentDeclarationOrder(t *testing.T) {
	// the later declared range wins even when it starts first
	tx := rich.NewText("abcdef")
	tx.AddStyle(2, 4, *rich.NewStyle().SetSize(10).SetWeight(rich.Bold))
	tx.AddStyle(0, 6, *rich.NewStyle().SetSize(20))
	runs := Segment(tx)
	require.Len(t, runs, 3)
	assert.Equal(t, []int{0, 1}, runs[1].Styles)
	assert.Equal(t, float32(20), runs[1].Style.Size)
	assert.Equal(t, rich.Bold, runs[1].Style.Weight)
}

func TestSegmentLinksParagraphs(t *testing.T) {
	tx := rich.NewText("hello world")
	tx.AddLink(0, 11, rich.Link{ID: "outer"})
	tx.AddLink(6, 11, rich.Link{ID: "inner"})
	var p rich.Paragraph
	p.SetAlign(rich.Center)
	tx.AddParagraph(0, 11, p)
	runs := Segment(tx)
	require.Len(t, runs, 2)
	assert.Equal(t, 0, runs[1].Link())
	assert.Equal(t, []int{0, 1}, runs[1].Links)
	assert.Equal(t, rich.Center, runs[0].Paragraph.Align)
	assert.Equal(t, -1, (&Run{}).Link())
}

func TestSegmentPlaceholder(t *testing.T) {
	b := rich.NewBuilder()
	b.PushStyle(*rich.NewStyle().SetWeight(rich.Bold))
	b.Append("ab")
	b.AppendPlaceholder("p")
	b.Append("cd")
	tx := b.Build(map[string]rich.PlaceholderSize{"p": {Width: 5, Height: 5}})

	runs := Segment(tx)
	require.Equal(t, []textpos.Range{{Start: 0, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 5}}, ranges(runs))
	assert.False(t, runs[0].IsPlaceholder())
	assert.True(t, runs[1].IsPlaceholder())
	assert.Equal(t, 0, runs[1].Placeholder)
	assert.Equal(t, []int{0}, runs[1].Styles)
	assert.Equal(t, -1, runs[2].Placeholder)
}

func TestSegmentEmpty(t *testing.T) {
	runs := Segment(rich.NewText(""))
	require.Len(t, runs, 1)
	assert.Equal(t, textpos.R(0, 0), runs[0].Range)
	assert.False(t, runs[0].IsPlaceholder())

	tx := rich.NewText("")
	tx.AddStyle(3, 7, *rich.NewStyle().SetSize(2))
	runs = Segment(tx)
	require.Len(t, runs, 1)
	assert.Empty(t, runs[0].Styles)
}

func TestSegmentMalformed(t *testing.T) {
	tx := rich.NewText("abcdef")
	tx.AddStyle(4, 2, *rich.NewStyle().SetSize(10))   // reversed
	tx.AddStyle(-3, 100, *rich.NewStyle().SetSize(5)) // out of bounds
	tx.AddPlaceholder(1, rich.Placeholder{ID: "a"})
	tx.AddPlaceholder(1, rich.Placeholder{ID: "dup"})
	tx.AddPlaceholder(6, rich.Placeholder{ID: "end"})
	tx.Placeholders = append(tx.Placeholders, rich.PlaceholderRange{Range: textpos.R(3, 5)})

	sn := Sanitize(tx)
	assert.Equal(t, textpos.R(2, 4), sn.Styles[0])
	assert.Equal(t, textpos.R(0, 6), sn.Styles[1])
	assert.Equal(t, textpos.R(1, 2), sn.Placeholders[0])
	assert.Equal(t, textpos.R(-1, -1), sn.Placeholders[1])
	assert.Equal(t, textpos.R(-1, -1), sn.Placeholders[2])
	assert.Equal(t, textpos.R(3, 4), sn.Placeholders[3])

	runs := Segment(tx)
	require.Equal(t, []textpos.Range{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 4}, {Start: 4, End: 6}}, ranges(runs))
	assert.Equal(t, 0, runs[1].Placeholder)
	assert.Equal(t, 3, runs[3].Placeholder)
	assert.Equal(t, float32(5), runs[2].Style.Size)
	assert.Equal(t, []int{0, 1}, runs[2].Styles)
}

// TestSegmentPartition checks on random inputs that the runs
// partition the source and carry exactly the covering ranges.
func TestSegmentPartition(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for iter := range 200 {
		n := rnd.IntN(30)
		src := make([]rune, n)
		for i := range src {
			src[i] = rune('a' + rnd.IntN(26))
		}
		tx := &rich.Text{Source: src}
		for range rnd.IntN(6) {
			tx.AddStyle(rnd.IntN(n+3)-1, rnd.IntN(n+3)-1, *rich.NewStyle().SetSize(float32(rnd.IntN(20))))
		}
		for range rnd.IntN(3) {
			tx.AddLink(rnd.IntN(n+1), rnd.IntN(n+1), rich.Link{ID: "x"})
		}
		if n > 0 {
			for range rnd.IntN(3) {
				tx.AddPlaceholder(rnd.IntN(n), rich.Placeholder{})
			}
		}
		runs := Segment(tx)
		require.NotEmpty(t, runs, "iter %d", iter)
		var got []rune
		pos := 0
		for _, r := range runs {
			require.Equal(t, pos, r.Range.Start, "iter %d: gap or overlap", iter)
			pos = r.Range.End
			got = append(got, src[r.Range.Start:r.Range.End]...)
			if r.IsPlaceholder() {
				assert.Equal(t, 1, r.Range.Len())
			}
		}
		assert.Equal(t, n, pos, "iter %d", iter)
		assert.Equal(t, string(src), string(got), "iter %d", iter)

		sn := Sanitize(tx)
		for _, r := range runs {
			if r.Range.IsEmpty() {
				continue
			}
			var want []int
			for si, rg := range sn.Styles {
				if !rg.IsEmpty() && rg.Covers(r.Range) {
					want = append(want, si)
				} else {
					assert.True(t, rg.Intersect(r.Range).Start < 0, "iter %d: style %d partially overlaps run %s", iter, si, r.Range)
				}
			}
			assert.Equal(t, want, r.Styles, "iter %d run %s", iter, r.Range)
		}
	}
}
