// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "fmt"

// Paragraph has the paragraph-level properties that apply to a range
// of text: alignment, line height and first-line indent.
// As with [Style], only the properties flagged in [Paragraph.Set]
// are specified.
type Paragraph struct { //types:add

	// Set records which of the properties are specified.
	Set ParaProps

	// Align is the horizontal alignment of the lines.
	Align Aligns

	// LineHeight is the absolute height of each line in dots.
	// If not specified, it is computed from the fonts on the line.
	LineHeight float32

	// Indent is the indentation of the first line of the paragraph, in dots.
	Indent float32
}

// ParaProps are bit flags for the properties of a [Paragraph].
type ParaProps uint8

const (
	ParaAlign ParaProps = 1 << iota
	ParaLineHeight
	ParaIndent
)

// Has returns true if the given property is specified.
func (p ParaProps) Has(f ParaProps) bool {
	return p&f != 0
}

// SetAlign sets the alignment.
func (p *Paragraph) SetAlign(a Aligns) *Paragraph {
	p.Align = a
	p.Set |= ParaAlign
	return p
}

// SetLineHeight sets the line height in dots.
func (p *Paragraph) SetLineHeight(h float32) *Paragraph {
	p.LineHeight = h
	p.Set |= ParaLineHeight
	return p
}

// SetIndent sets the first-line indent in dots.
func (p *Paragraph) SetIndent(in float32) *Paragraph {
	p.Indent = in
	p.Set |= ParaIndent
	return p
}

// Merge returns a copy of this paragraph with the properties
// specified in the other one replaced by its values.
func (p Paragraph) Merge(o Paragraph) Paragraph {
	if o.Set.Has(ParaAlign) {
		p.Align = o.Align
	}
	if o.Set.Has(ParaLineHeight) {
		p.LineHeight = o.LineHeight
	}
	if o.Set.Has(ParaIndent) {
		p.Indent = o.Indent
	}
	p.Set |= o.Set
	return p
}

func (p Paragraph) String() string {
	return fmt.Sprintf("align: %s line-height: %g indent: %g", p.Align, p.LineHeight, p.Indent)
}
