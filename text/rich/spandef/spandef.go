// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spandef

import (
	"fmt"
	"io"

	"cogentcore.org/textlayout/text/rich"
)

// Parse parses a span definition from the reader into a [rich.Text].
// Placeholder sizes come from the given map, overridden by any size
// attributes of the placeholder itself.
func Parse(r io.Reader, sizes map[string]rich.PlaceholderSize) (*rich.Text, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return nil, fmt.Errorf("spandef: %w", err)
	}
	return doc.Text(sizes)
}

// ParseString parses a span definition string into a [rich.Text].
func ParseString(input string, sizes map[string]rich.PlaceholderSize) (*rich.Text, error) {
	doc, err := ParseDocumentString(input)
	if err != nil {
		return nil, fmt.Errorf("spandef: %w", err)
	}
	return doc.Text(sizes)
}

// Text returns the [rich.Text] for the document.
func (doc *Document) Text(sizes map[string]rich.PlaceholderSize) (*rich.Text, error) {
	cv := &converter{b: rich.NewBuilder(), sizes: map[string]rich.PlaceholderSize{}}
	for id, sz := range sizes {
		cv.sizes[id] = sz
	}
	if err := cv.nodes(doc.Nodes); err != nil {
		return nil, err
	}
	return cv.b.Build(cv.sizes), nil
}

type converter struct {
	b     *rich.Builder
	sizes map[string]rich.PlaceholderSize
}

func (cv *converter) nodes(nodes []*Node) error {
	for _, nd := range nodes {
		switch {
		case nd.Text != nil:
			cv.b.Append(string(*nd.Text))
		case nd.Group != nil:
			if err := cv.group(nd.Group); err != nil {
				return err
			}
		case nd.Placeholder != nil:
			if err := cv.placeholder(nd.Placeholder); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cv *converter) group(g *Group) error {
	var sty rich.Style
	var para rich.Paragraph
	var lk rich.Link
	hasLink := false
	for _, at := range g.Attrs {
		var err error
		switch at.Key {
		case "link", "url":
			hasLink = true
			if at.Key == "link" {
				lk.ID = at.Value.Text()
			} else {
				lk.URL = at.Value.Text()
			}
		case "align", "line-height", "indent":
			err = paragraphAttr(&para, at)
		default:
			err = styleAttr(&sty, at)
		}
		if err != nil {
			return err
		}
	}
	depth := -1
	mark := func(d int) {
		if depth < 0 {
			depth = d
		}
	}
	if para.Set != 0 {
		mark(cv.b.PushParagraph(para))
	}
	if hasLink {
		mark(cv.b.PushLink(lk))
	}
	if sty.Set != 0 {
		mark(cv.b.PushStyle(sty))
	}
	if err := cv.nodes(g.Nodes); err != nil {
		return err
	}
	if depth >= 0 {
		cv.b.PopTo(depth)
	}
	return nil
}

func (cv *converter) placeholder(ph *PlaceholderNode) error {
	sz := cv.sizes[ph.ID]
	for _, at := range ph.Attrs {
		switch at.Key {
		case "width", "height":
			f, err := number(at)
			if err != nil {
				return err
			}
			if at.Key == "width" {
				sz.Width = f
			} else {
				sz.Height = f
			}
		case "align":
			if err := sz.Align.UnmarshalText([]byte(at.Value.Text())); err != nil {
				return attrError(at, err)
			}
		default:
			return fmt.Errorf("spandef: %s: unknown placeholder attribute %q", ph.Pos, at.Key)
		}
	}
	cv.sizes[ph.ID] = sz
	cv.b.AppendPlaceholder(ph.ID)
	return nil
}

// styleAttr sets the style property for the given attribute.
func styleAttr(sty *rich.Style, at *Attr) error {
	val := at.Value.Text()
	switch at.Key {
	case "bold":
		sty.SetWeight(rich.Bold)
	case "italic":
		sty.SetSlant(rich.Italic)
	case "underline":
		sty.SetDecoration(sty.Decoration | rich.Underline)
	case "line-through", "strikethrough":
		sty.SetDecoration(sty.Decoration | rich.LineThrough)
	case "weight":
		var w rich.Weights
		if err := w.UnmarshalText([]byte(val)); err != nil {
			return attrError(at, err)
		}
		sty.SetWeight(w)
	case "slant":
		var s rich.Slants
		if err := s.UnmarshalText([]byte(val)); err != nil {
			return attrError(at, err)
		}
		sty.SetSlant(s)
	case "decoration":
		var d rich.Decorations
		if err := d.UnmarshalText([]byte(val)); err != nil {
			return attrError(at, err)
		}
		sty.SetDecoration(d)
	case "family":
		sty.SetFamily(val)
	case "size", "letter-spacing":
		f, err := number(at)
		if err != nil {
			return err
		}
		if at.Key == "size" {
			sty.SetSize(f)
		} else {
			sty.SetLetterSpacing(f)
		}
	case "color", "background":
		c, err := rich.ParseColor(val)
		if err != nil {
			return attrError(at, err)
		}
		if at.Key == "color" {
			sty.SetColor(c)
		} else {
			sty.SetBackground(c)
		}
	default:
		return fmt.Errorf("spandef: %s: unknown attribute %q", at.Pos, at.Key)
	}
	return nil
}

// paragraphAttr sets the paragraph property for the given attribute.
func paragraphAttr(para *rich.Paragraph, at *Attr) error {
	if at.Key == "align" {
		var a rich.Aligns
		if err := a.UnmarshalText([]byte(at.Value.Text())); err != nil {
			return attrError(at, err)
		}
		para.SetAlign(a)
		return nil
	}
	f, err := number(at)
	if err != nil {
		return err
	}
	if at.Key == "indent" {
		para.SetIndent(f)
	} else {
		para.SetLineHeight(f)
	}
	return nil
}

// number returns the numerical value of the attribute.
func number(at *Attr) (float32, error) {
	if at.Value == nil || at.Value.Number == nil {
		return 0, fmt.Errorf("spandef: %s: attribute %q requires a number", at.Pos, at.Key)
	}
	return float32(*at.Value.Number), nil
}

func attrError(at *Attr, err error) error {
	return fmt.Errorf("spandef: %s: attribute %q: %w", at.Pos, at.Key, err)
}
