// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"slices"
	"strings"
)

// Weights are the font weights, in the standard 100 to 900 scale.
type Weights int32 //enums:enum -transform kebab

const (
	// Normal is the default weight (400).
	Normal Weights = iota
	Thin
	ExtraLight
	Light
	Medium
	SemiBold
	Bold
	ExtraBold
	Black
)

var weightNames = []string{"normal", "thin", "extra-light", "light", "medium", "semi-bold", "bold", "extra-bold", "black"}

var weightValues = []float32{400, 100, 200, 300, 500, 600, 700, 800, 900}

// ToFloat32 returns the numerical weight value, from 100 to 900.
func (w Weights) ToFloat32() float32 {
	if w < 0 || int(w) >= len(weightValues) {
		return 400
	}
	return weightValues[w]
}

// IsBold returns true if the weight is semi-bold or heavier.
func (w Weights) IsBold() bool {
	return w.ToFloat32() >= 600
}

func (w Weights) String() string {
	return enumString(int(w), weightNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (w Weights) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (w *Weights) UnmarshalText(text []byte) error {
	return enumSet((*int32)(w), string(text), weightNames, "Weights")
}

// Slants are the font slants.
type Slants int32 //enums:enum -transform kebab

const (
	// SlantNormal is the upright style.
	SlantNormal Slants = iota

	// Italic is the italic or oblique style.
	Italic
)

var slantNames = []string{"normal", "italic"}

func (s Slants) String() string {
	return enumString(int(s), slantNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Slants) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Slants) UnmarshalText(text []byte) error {
	return enumSet((*int32)(s), string(text), slantNames, "Slants")
}

// Decorations are bit flags for lines drawn along with the glyphs.
type Decorations int32 //enums:bitflag -transform kebab

const (
	// Underline draws a line below the text.
	Underline Decorations = 1 << iota

	// LineThrough draws a line through the middle of the text.
	LineThrough
)

var decorationNames = []string{"underline", "line-through"}

// HasFlag returns true if the given flag is set.
func (d Decorations) HasFlag(f Decorations) bool {
	return d&f != 0
}

func (d Decorations) String() string {
	if d == 0 {
		return "none"
	}
	var names []string
	for i, nm := range decorationNames {
		if d.HasFlag(1 << i) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}

// MarshalText implements [encoding.TextMarshaler].
func (d Decorations) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts flag names separated by | or spaces, or "none".
func (d *Decorations) UnmarshalText(text []byte) error {
	*d = 0
	for _, f := range strings.FieldsFunc(string(text), func(r rune) bool { return r == '|' || r == ' ' || r == ',' }) {
		f = strings.ToLower(f)
		if f == "none" {
			continue
		}
		if f == "strikethrough" {
			f = "line-through"
		}
		i := slices.Index(decorationNames, f)
		if i < 0 {
			return fmt.Errorf("%q is not a valid value for type Decorations", f)
		}
		*d |= 1 << i
	}
	return nil
}

// Aligns are the ways of aligning lines of text within a paragraph.
type Aligns int32 //enums:enum -transform kebab

const (
	// Start aligns to the start (left) of the text region.
	Start Aligns = iota

	// End aligns to the end (right) of the text region.
	End

	// Center aligns to the center of the text region.
	Center

	// Justify spreads words to cover the entire text region.
	// It is currently laid out the same as [Start].
	Justify
)

var alignNames = []string{"start", "end", "center", "justify"}

// Factor returns the proportion of the free space on a line
// that goes before the line content.
func (a Aligns) Factor() float32 {
	switch a {
	case Center:
		return 0.5
	case End:
		return 1
	}
	return 0
}

func (a Aligns) String() string {
	return enumString(int(a), alignNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Aligns) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Aligns) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch s {
	case "left":
		s = "start"
	case "right":
		s = "end"
	}
	return enumSet((*int32)(a), s, alignNames, "Aligns")
}

// PlaceholderAligns are the ways a placeholder is vertically
// aligned relative to the line of text it is placed in.
type PlaceholderAligns int32 //enums:enum -transform kebab

const (
	// AlignTextCenter aligns the vertical center of the placeholder
	// with the vertical center of the text on the line.
	AlignTextCenter PlaceholderAligns = iota

	// AlignBaseline puts the bottom of the placeholder on the baseline.
	AlignBaseline

	// AlignTop aligns the top of the placeholder with the top of the line.
	AlignTop

	// AlignBottom aligns the bottom of the placeholder with the bottom of the line.
	AlignBottom

	// AlignCenter aligns the center of the placeholder with the center of the line.
	AlignCenter

	// AlignTextTop aligns the top of the placeholder with the top of the text.
	AlignTextTop

	// AlignTextBottom aligns the bottom of the placeholder with the bottom of the text.
	AlignTextBottom
)

var placeholderAlignNames = []string{"text-center", "baseline", "top", "bottom", "center", "text-top", "text-bottom"}

func (a PlaceholderAligns) String() string {
	return enumString(int(a), placeholderAlignNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (a PlaceholderAligns) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *PlaceholderAligns) UnmarshalText(text []byte) error {
	return enumSet((*int32)(a), string(text), placeholderAlignNames, "PlaceholderAligns")
}

func enumString(i int, names []string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%d", i)
	}
	return names[i]
}

func enumSet(v *int32, s string, names []string, typ string) error {
	i := slices.Index(names, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return fmt.Errorf("%q is not a valid value for type %s", s, typ)
	}
	*v = int32(i)
	return nil
}
