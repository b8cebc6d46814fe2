// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
)

// Font is the resolved font for a run: everything that determines
// the size of the text, with all values concrete.
type Font struct {

	// Family is a family that the [Measurer] has.
	Family string

	// Size is the font size in dots.
	Size float32

	// Weight is the font weight.
	Weight rich.Weights

	// Slant is the font slant.
	Slant rich.Slants

	// LetterSpacing is the extra space after each grapheme, in dots.
	LetterSpacing float32
}

// NewFont returns the [Font] for the given fully resolved style.
// A family the measurer does not have is replaced by its default family.
func NewFont(sty *rich.Style, m Measurer) Font {
	fn := Font{Family: sty.Family, Size: math32.NonNegative(sty.Size), Weight: sty.Weight, Slant: sty.Slant}
	if fn.Family == "" || !m.HasFamily(fn.Family) {
		def := m.DefaultFamily()
		if fn.Family != "" {
			slog.Debug("shaped: font family not found, using default", "family", fn.Family, "default", def)
		}
		fn.Family = def
	}
	if ls := sty.LetterSpacing * fn.Size; math32.IsFinite(ls) {
		fn.LetterSpacing = ls
	}
	return fn
}

func (fn Font) String() string {
	return fmt.Sprintf("%s %g %s %s", fn.Family, fn.Size, fn.Weight, fn.Slant)
}

// Paint are the resolved rendering properties of a run,
// which do not affect layout.
type Paint struct {

	// Color is the glyph fill color, used when Gradient is nil.
	Color color.RGBA

	// Gradient is an optional gradient glyph fill.
	Gradient *rich.Gradient `json:",omitempty"`

	// Background is the background color behind the run.
	Background color.RGBA

	// Shadow is the glyph shadow.
	Shadow rich.Shadow

	// Decoration are the decoration lines.
	Decoration rich.Decorations
}

// NewPaint returns the [Paint] for the given fully resolved style.
func NewPaint(sty *rich.Style) Paint {
	return Paint{Color: sty.Color, Gradient: sty.Gradient, Background: sty.Background, Shadow: sty.Shadow, Decoration: sty.Decoration}
}

// FontMetrics are the vertical metrics of a font, in dots.
type FontMetrics struct {

	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the line,
	// as a positive value.
	Descent float32

	// LineGap is the extra gap recommended by the font between lines.
	LineGap float32
}

// Height returns the font-derived line height: Ascent + Descent.
func (fm FontMetrics) Height() float32 {
	return fm.Ascent + fm.Descent
}
