// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"slices"

	"cogentcore.org/textlayout/text/textpos"
)

// Text is the rich text value: a plain []rune source annotated with
// four kinds of half-open rune index ranges. Style and paragraph ranges
// may overlap: where they do, ranges declared later override earlier
// ones field by field. Placeholder ranges have length 1 and cover a
// [PlaceholderRune] in the source.
//
// A Text is treated as immutable once it has been handed to layout:
// build a new one for each content change.
type Text struct {
	// Source is the plain unicode text.
	Source []rune

	// Styles are the character style ranges, in declaration order.
	Styles []StyleRange

	// Paragraphs are the paragraph style ranges, in declaration order.
	Paragraphs []ParagraphRange

	// Links are the link ranges, in declaration order.
	Links []LinkRange

	// Placeholders are the inline placeholder slots.
	Placeholders []PlaceholderRange
}

// StyleRange is a [Style] applied to a range of the source.
type StyleRange struct {
	Range textpos.Range
	Style Style
}

// ParagraphRange is a [Paragraph] applied to a range of the source.
type ParagraphRange struct {
	Range     textpos.Range
	Paragraph Paragraph
}

// LinkRange is a [Link] over a range of the source.
type LinkRange struct {
	Range textpos.Range
	Link  Link
}

// PlaceholderRange is a [Placeholder] at a single position in the source.
type PlaceholderRange struct {
	Range       textpos.Range
	Placeholder Placeholder
}

// NewText returns a new [Text] with the given source and no ranges.
func NewText(s string) *Text {
	return &Text{Source: []rune(s)}
}

// NewPlainText returns a new [Text] for plain text, which is laid out
// as a single run with the default style.
func NewPlainText(s string) *Text {
	return NewText(s)
}

// Len returns the number of runes in the source.
func (tx *Text) Len() int {
	return len(tx.Source)
}

// String returns the source as a string.
func (tx *Text) String() string {
	return string(tx.Source)
}

// Slice returns the source runes in the given range, clamped to the source.
func (tx *Text) Slice(rg textpos.Range) []rune {
	rg = rg.Clamp(len(tx.Source))
	return tx.Source[rg.Start:rg.End]
}

// AddStyle adds a style over the given range [start, end).
func (tx *Text) AddStyle(start, end int, st Style) *Text {
	tx.Styles = append(tx.Styles, StyleRange{Range: textpos.R(start, end), Style: st})
	return tx
}

// AddParagraph adds paragraph properties over the given range [start, end).
func (tx *Text) AddParagraph(start, end int, p Paragraph) *Text {
	tx.Paragraphs = append(tx.Paragraphs, ParagraphRange{Range: textpos.R(start, end), Paragraph: p})
	return tx
}

// AddLink adds a link over the given range [start, end).
func (tx *Text) AddLink(start, end int, lk Link) *Text {
	tx.Links = append(tx.Links, LinkRange{Range: textpos.R(start, end), Link: lk})
	return tx
}

// AddPlaceholder adds a placeholder covering the single rune at the given
// position, which should be a [PlaceholderRune]. Use [Builder.AppendPlaceholder]
// to insert the rune and the placeholder together.
func (tx *Text) AddPlaceholder(at int, ph Placeholder) *Text {
	tx.Placeholders = append(tx.Placeholders, PlaceholderRange{Range: textpos.R(at, at+1), Placeholder: ph})
	return tx
}

// StyleAt returns the merged style of all style ranges that contain
// the given rune index, applied on top of the given base style.
func (tx *Text) StyleAt(base Style, i int) Style {
	for _, sr := range tx.Styles {
		if sr.Range.Contains(i) {
			base = base.Merge(sr.Style)
		}
	}
	return base
}

// ParagraphAt returns the merged paragraph properties of all paragraph
// ranges that contain the given rune index.
func (tx *Text) ParagraphAt(i int) Paragraph {
	var p Paragraph
	for _, pr := range tx.Paragraphs {
		if pr.Range.Contains(i) {
			p = p.Merge(pr.Paragraph)
		}
	}
	return p
}

// LinkAt returns the index of the first link range that contains the
// given rune index, or -1 if there is none.
func (tx *Text) LinkAt(i int) int {
	return slices.IndexFunc(tx.Links, func(lr LinkRange) bool {
		return lr.Range.Contains(i)
	})
}

// PlaceholderAt returns the index of the placeholder at the given
// rune index, or -1 if there is none.
func (tx *Text) PlaceholderAt(i int) int {
	return slices.IndexFunc(tx.Placeholders, func(pr PlaceholderRange) bool {
		return pr.Range.Start == i
	})
}

// Clone returns a deep copy of the text.
func (tx *Text) Clone() *Text {
	return &Text{
		Source:       slices.Clone(tx.Source),
		Styles:       slices.Clone(tx.Styles),
		Paragraphs:   slices.Clone(tx.Paragraphs),
		Links:        slices.Clone(tx.Links),
		Placeholders: slices.Clone(tx.Placeholders),
	}
}

// Equal reports whether the two texts have identical source and ranges.
func (tx *Text) Equal(o *Text) bool {
	if !tx.LayoutEqual(o) {
		return false
	}
	if tx == nil {
		return true
	}
	for i := range tx.Styles {
		if !tx.Styles[i].Style.Equal(o.Styles[i].Style) {
			return false
		}
	}
	return true
}

// LayoutEqual reports whether the two texts would produce the same
// layout: they may only differ in style properties outside of [LayoutProps],
// such as colors and decorations. A text that is LayoutEqual can
// be restyled in place instead of laid out again.
func (tx *Text) LayoutEqual(o *Text) bool {
	if tx == nil || o == nil {
		return tx == o
	}
	if !slices.Equal(tx.Source, o.Source) || !slices.Equal(tx.Paragraphs, o.Paragraphs) ||
		!slices.Equal(tx.Links, o.Links) || !slices.Equal(tx.Placeholders, o.Placeholders) {
		return false
	}
	return slices.EqualFunc(tx.Styles, o.Styles, func(a, b StyleRange) bool {
		return a.Range == b.Range && a.Style.LayoutEqual(b.Style)
	})
}
