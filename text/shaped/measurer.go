// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/text"
)

// Measurer is the host capability for measuring text, which is all that
// layout needs to know about fonts. Implementations must return the same
// result for the same inputs and be safe for concurrent use, so that
// layout can run in the background.
type Measurer interface {

	// RunWidth returns the advance width in dots of the given text in
	// the given font, not including [Font.LetterSpacing].
	RunWidth(txt []rune, fn *Font) float32

	// Metrics returns the vertical metrics of the given font.
	Metrics(fn *Font) FontMetrics

	// HasFamily returns true if the given font family is available.
	HasFamily(family string) bool

	// DefaultFamily returns the family used in place of unavailable ones.
	DefaultFamily() string
}

// PlaceholderMeasurer returns the size of an inline placeholder, in dots.
type PlaceholderMeasurer func(ph rich.Placeholder) (width, height float32)

// IntrinsicSize is the default [PlaceholderMeasurer], which returns the
// size declared by the placeholder itself.
func IntrinsicSize(ph rich.Placeholder) (width, height float32) {
	return ph.Width, ph.Height
}

// LineHeight returns the default line height for the given text style,
// based on its default font.
func LineHeight(m Measurer, tsty *text.Style) float32 {
	fn := NewFont(&tsty.Font, m)
	return m.Metrics(&fn).Height() * tsty.LineSpacing
}

// WrapSizeEstimate returns a size to use for a first layout pass when
// there is no width constraint yet, based on trying to fit the given
// number of characters into the given content size with the default
// font height, and ratio of width to height. Ratio is used when csz is 0:
// 1.618 is golden, and smaller numbers allow for narrower, taller text columns.
func WrapSizeEstimate(csz math32.Vector2, nChars int, ratio float32, tsty *text.Style) math32.Vector2 {
	chars := float32(nChars)
	fht := tsty.FontHeight(nil)
	if fht == 0 {
		fht = 16
	}
	area := chars * fht * fht
	if csz.X > 0 && csz.Y > 0 {
		ratio = csz.X / csz.Y
	}
	// w = ratio * h
	// w^2 + h^2 = a
	// (ratio*h)^2 + h^2 = a
	h := math32.Sqrt(area) / math32.Sqrt(ratio+1)
	w := ratio * h
	if w < csz.X { // must be at least this
		w = csz.X
		h = area / w
		h = max(h, csz.Y)
	}
	return math32.Vec2(w, h)
}
