// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"log/slog"

	"cogentcore.org/textlayout/text/textpos"
)

// Builder constructs a [Text] incrementally: text is appended, and
// styles, paragraphs and links are pushed to start a range at the
// current end of the text and popped to end it. Ranges are declared
// in push order, so a range pushed inside another one overrides it.
// Inline placeholder slots are added by name and resolved against
// a map of sizes in [Builder.Build].
type Builder struct {
	text  Text
	stack []openRange
	slots []slot
}

type rangeKinds int32

const (
	styleRange rangeKinds = iota
	paragraphRange
	linkRange
)

// openRange is a pushed range that has not yet been popped.
type openRange struct {
	kind  rangeKinds
	index int
}

// slot is a named placeholder at a position in the source.
type slot struct {
	id string
	at int
}

// NewBuilder returns a new empty [Builder].
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the current number of runes in the text.
func (b *Builder) Len() int {
	return len(b.text.Source)
}

// Append adds the given string to the end of the text.
func (b *Builder) Append(s string) *Builder {
	b.text.Source = append(b.text.Source, []rune(s)...)
	return b
}

// AppendRunes adds the given runes to the end of the text.
func (b *Builder) AppendRunes(r []rune) *Builder {
	b.text.Source = append(b.text.Source, r...)
	return b
}

// PushStyle starts a style range at the current position. It returns the
// depth of the stack before the push, for use with [Builder.PopTo].
func (b *Builder) PushStyle(s Style) int {
	n := b.Len()
	b.text.Styles = append(b.text.Styles, StyleRange{Range: textpos.R(n, n), Style: s})
	return b.push(styleRange, len(b.text.Styles)-1)
}

// PushParagraph starts a paragraph range at the current position.
// It returns the depth of the stack before the push.
func (b *Builder) PushParagraph(p Paragraph) int {
	n := b.Len()
	b.text.Paragraphs = append(b.text.Paragraphs, ParagraphRange{Range: textpos.R(n, n), Paragraph: p})
	return b.push(paragraphRange, len(b.text.Paragraphs)-1)
}

// PushLink starts a link range at the current position.
// It returns the depth of the stack before the push.
func (b *Builder) PushLink(lk Link) int {
	n := b.Len()
	b.text.Links = append(b.text.Links, LinkRange{Range: textpos.R(n, n), Link: lk})
	return b.push(linkRange, len(b.text.Links)-1)
}

func (b *Builder) push(kind rangeKinds, index int) int {
	b.stack = append(b.stack, openRange{kind: kind, index: index})
	return len(b.stack) - 1
}

// Pop ends the most recently pushed range at the current position.
func (b *Builder) Pop() *Builder {
	if len(b.stack) == 0 {
		slog.Debug("rich.Builder: Pop with no open range")
		return b
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	n := b.Len()
	switch top.kind {
	case styleRange:
		b.text.Styles[top.index].Range.End = n
	case paragraphRange:
		b.text.Paragraphs[top.index].Range.End = n
	case linkRange:
		b.text.Links[top.index].Range.End = n
	}
	return b
}

// PopTo pops ranges until the stack has the given depth,
// as returned by one of the push methods.
func (b *Builder) PopTo(depth int) *Builder {
	for len(b.stack) > max(depth, 0) {
		b.Pop()
	}
	return b
}

// AddStyle adds a style over an explicit range [start, end).
func (b *Builder) AddStyle(start, end int, s Style) *Builder {
	b.text.AddStyle(start, end, s)
	return b
}

// AddLink adds a link over an explicit range [start, end).
func (b *Builder) AddLink(start, end int, lk Link) *Builder {
	b.text.AddLink(start, end, lk)
	return b
}

// AppendPlaceholder appends a named inline placeholder slot, inserting
// a [PlaceholderRune] in the text. The size of the slot is resolved
// by name in [Builder.Build].
func (b *Builder) AppendPlaceholder(id string) *Builder {
	b.slots = append(b.slots, slot{id: id, at: b.Len()})
	b.text.Source = append(b.text.Source, PlaceholderRune)
	return b
}

// Build ends any open ranges, resolves the placeholder slots against
// the given sizes and returns the resulting [Text]. A slot whose name
// is not in sizes gets a zero size. The builder is reset and can be reused.
func (b *Builder) Build(sizes map[string]PlaceholderSize) *Text {
	b.PopTo(0)
	tx := b.text
	for _, sl := range b.slots {
		sz, ok := sizes[sl.id]
		if !ok {
			slog.Debug("rich.Builder: no size for placeholder", "id", sl.id)
		}
		tx.AddPlaceholder(sl.at, Placeholder{ID: sl.id, Width: sz.Width, Height: sz.Height, VerticalAlign: sz.Align})
	}
	*b = Builder{}
	return &tx
}
