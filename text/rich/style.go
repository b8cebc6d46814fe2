// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"cogentcore.org/textlayout/math32"
)

// Style contains the text styling properties that can be applied
// to a range of text. Only the properties whose flag is present in
// [Style.Set] are specified: the rest are inherited from whatever
// is underneath, ultimately the default style of the text.
// Style is a value type: use [Style.Merge] to combine styles.
type Style struct { //types:add

	// Set records which of the properties are specified by this style.
	Set Props

	// Size is the font size in dots (raw display pixels).
	Size float32

	// Weight is the font weight.
	Weight Weights

	// Slant is the font slant (normal or italic).
	Slant Slants

	// Family is the font family name. If the host does not have it,
	// the default family is used instead.
	Family string

	// LetterSpacing is extra space added after each character,
	// as a proportion of the font size.
	LetterSpacing float32

	// Color is the fill color of the glyphs. It is only used if
	// Gradient is nil.
	Color color.RGBA

	// Gradient is an optional gradient fill for the glyphs,
	// which takes precedence over Color.
	Gradient *Gradient

	// Background is the background color for the region of the text.
	Background color.RGBA

	// Shadow is the shadow drawn under the glyphs.
	Shadow Shadow

	// Decoration are lines drawn along with the glyphs.
	Decoration Decorations
}

// Props are bit flags for each of the properties of a [Style].
type Props uint32

const (
	// PropSize is set when [Style.Size] is specified.
	PropSize Props = 1 << iota

	// PropWeight is set when [Style.Weight] is specified.
	PropWeight

	// PropSlant is set when [Style.Slant] is specified.
	PropSlant

	// PropFamily is set when [Style.Family] is specified.
	PropFamily

	// PropLetterSpacing is set when [Style.LetterSpacing] is specified.
	PropLetterSpacing

	// PropFill is set when the [Style.Color] or [Style.Gradient] fill is specified.
	PropFill

	// PropBackground is set when [Style.Background] is specified.
	PropBackground

	// PropShadow is set when [Style.Shadow] is specified.
	PropShadow

	// PropDecoration is set when [Style.Decoration] is specified.
	PropDecoration
)

// LayoutProps are the properties that affect the measured size of text.
// Styles differing only outside of these can be applied without re-layout.
const LayoutProps = PropSize | PropWeight | PropSlant | PropFamily | PropLetterSpacing

// Has returns true if the given property is specified.
func (p Props) Has(f Props) bool {
	return p&f != 0
}

// Shadow is a drop shadow under text glyphs.
type Shadow struct {
	// Offset is the offset of the shadow from the glyphs.
	Offset math32.Vector2

	// Blur is the blur radius.
	Blur float32

	// Color is the shadow color.
	Color color.RGBA
}

// GradientStop is one color stop in a [Gradient].
type GradientStop struct {
	// Offset is the position of the stop, from 0 to 1.
	Offset float32

	// Color is the color at this stop.
	Color color.RGBA
}

// Gradient is a linear gradient fill across a run of text.
type Gradient struct {
	// Angle is the direction of the gradient in degrees,
	// where 0 goes from left to right.
	Angle float32

	// Stops are the color stops.
	Stops []GradientStop
}

// Equal returns true if the two gradients are the same, treating nil as no gradient.
func (g *Gradient) Equal(o *Gradient) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.Angle == o.Angle && slices.Equal(g.Stops, o.Stops)
}

// NewStyle returns a new empty [Style], which specifies nothing.
func NewStyle() *Style {
	return &Style{}
}

// SetSize sets the font size in dots.
func (s *Style) SetSize(size float32) *Style {
	s.Size = size
	s.Set |= PropSize
	return s
}

// SetWeight sets the font weight.
func (s *Style) SetWeight(w Weights) *Style {
	s.Weight = w
	s.Set |= PropWeight
	return s
}

// SetSlant sets the font slant.
func (s *Style) SetSlant(sl Slants) *Style {
	s.Slant = sl
	s.Set |= PropSlant
	return s
}

// SetFamily sets the font family.
func (s *Style) SetFamily(family string) *Style {
	s.Family = family
	s.Set |= PropFamily
	return s
}

// SetLetterSpacing sets the letter spacing as a proportion of font size.
func (s *Style) SetLetterSpacing(ls float32) *Style {
	s.LetterSpacing = ls
	s.Set |= PropLetterSpacing
	return s
}

// SetColor sets a uniform fill color, replacing any gradient.
func (s *Style) SetColor(c color.Color) *Style {
	s.Color = color.RGBAModel.Convert(c).(color.RGBA)
	s.Gradient = nil
	s.Set |= PropFill
	return s
}

// SetGradient sets a gradient fill.
func (s *Style) SetGradient(g *Gradient) *Style {
	s.Gradient = g
	s.Set |= PropFill
	return s
}

// SetBackground sets the background color.
func (s *Style) SetBackground(c color.Color) *Style {
	s.Background = color.RGBAModel.Convert(c).(color.RGBA)
	s.Set |= PropBackground
	return s
}

// SetShadow sets the shadow.
func (s *Style) SetShadow(sh Shadow) *Style {
	s.Shadow = sh
	s.Set |= PropShadow
	return s
}

// SetDecoration sets the decoration flags, replacing any existing ones.
func (s *Style) SetDecoration(d ...Decorations) *Style {
	s.Decoration = 0
	for _, f := range d {
		s.Decoration |= f
	}
	s.Set |= PropDecoration
	return s
}

// Merge returns a copy of this style with every property that is specified
// in the other style replaced by the other's value. This is a shallow,
// field-by-field merge: the other style wins on each property it sets.
func (s Style) Merge(o Style) Style {
	if o.Set.Has(PropSize) {
		s.Size = o.Size
	}
	if o.Set.Has(PropWeight) {
		s.Weight = o.Weight
	}
	if o.Set.Has(PropSlant) {
		s.Slant = o.Slant
	}
	if o.Set.Has(PropFamily) {
		s.Family = o.Family
	}
	if o.Set.Has(PropLetterSpacing) {
		s.LetterSpacing = o.LetterSpacing
	}
	if o.Set.Has(PropFill) {
		s.Color = o.Color
		s.Gradient = o.Gradient
	}
	if o.Set.Has(PropBackground) {
		s.Background = o.Background
	}
	if o.Set.Has(PropShadow) {
		s.Shadow = o.Shadow
	}
	if o.Set.Has(PropDecoration) {
		s.Decoration = o.Decoration
	}
	s.Set |= o.Set
	return s
}

// Equal reports whether the two styles specify the same properties
// with the same values.
func (s Style) Equal(o Style) bool {
	return s.LayoutEqual(o) && s.paintEqual(o)
}

// LayoutEqual reports whether the two styles are the same in all of
// the [LayoutProps], which determine the size of the text.
func (s Style) LayoutEqual(o Style) bool {
	if s.Set&LayoutProps != o.Set&LayoutProps {
		return false
	}
	return s.Size == o.Size && s.Weight == o.Weight && s.Slant == o.Slant &&
		s.Family == o.Family && s.LetterSpacing == o.LetterSpacing
}

func (s Style) paintEqual(o Style) bool {
	return s.Set == o.Set && s.Color == o.Color && s.Gradient.Equal(o.Gradient) &&
		s.Background == o.Background && s.Shadow == o.Shadow && s.Decoration == o.Decoration
}

func (s Style) String() string {
	var parts []string
	if s.Set.Has(PropSize) {
		parts = append(parts, fmt.Sprintf("size: %g", s.Size))
	}
	if s.Set.Has(PropWeight) {
		parts = append(parts, "weight: "+s.Weight.String())
	}
	if s.Set.Has(PropSlant) {
		parts = append(parts, "slant: "+s.Slant.String())
	}
	if s.Set.Has(PropFamily) {
		parts = append(parts, fmt.Sprintf("family: %q", s.Family))
	}
	if s.Set.Has(PropLetterSpacing) {
		parts = append(parts, fmt.Sprintf("letter-spacing: %g", s.LetterSpacing))
	}
	if s.Set.Has(PropFill) {
		if s.Gradient != nil {
			parts = append(parts, fmt.Sprintf("gradient: %d stops", len(s.Gradient.Stops)))
		} else {
			parts = append(parts, "color: "+ColorString(s.Color))
		}
	}
	if s.Set.Has(PropBackground) {
		parts = append(parts, "background: "+ColorString(s.Background))
	}
	if s.Set.Has(PropShadow) {
		parts = append(parts, fmt.Sprintf("shadow: %v %g %s", s.Shadow.Offset, s.Shadow.Blur, ColorString(s.Shadow.Color)))
	}
	if s.Set.Has(PropDecoration) {
		parts = append(parts, "decoration: "+s.Decoration.String())
	}
	return strings.Join(parts, " ")
}
