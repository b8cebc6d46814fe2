// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmltext converts text marked up with inline HTML
// formatting tags into a [rich.Text].
package htmltext

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/textlayout/text/rich"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// LinkColor is the fill color of <a> links.
var LinkColor = color.RGBA{0x1a, 0x5f, 0xb4, 0xff}

// converter maps a stream of elements and character data onto
// a [rich.Builder]. Each open element records the builder depth
// to pop back to when it ends, or -1 if it pushed nothing.
type converter struct {
	b     *rich.Builder
	sizes map[string]rich.PlaceholderSize

	// tags is the stack of open element names.
	tags []string

	// depths parallels tags with the builder depth of each element.
	depths []int

	// last is the last rune appended, 0 at the start.
	last rune

	// sheet has the declarations of <style> rules by selector.
	sheet map[string][]*css.Declaration

	// style accumulates the contents of a <style> element, if within one.
	style *strings.Builder

	errs []error
}

func newConverter(sizes map[string]rich.PlaceholderSize) *converter {
	cv := &converter{b: rich.NewBuilder(), sizes: map[string]rich.PlaceholderSize{}, sheet: map[string][]*css.Declaration{}}
	for id, sz := range sizes {
		cv.sizes[id] = sz
	}
	return cv
}

func (cv *converter) errorf(format string, args ...any) {
	cv.errs = append(cv.errs, fmt.Errorf("htmltext: "+format, args...))
}

func (cv *converter) append(s string) {
	if s == "" {
		return
	}
	rs := []rune(s)
	cv.b.AppendRunes(rs)
	cv.last = rs[len(rs)-1]
}

// chars handles character data, which is added to the text
// unless it is within a <style> element.
func (cv *converter) chars(s string) {
	if cv.style != nil {
		cv.style.WriteString(s)
		return
	}
	cv.append(s)
}

// newline ends the current line unless already at the start of one.
func (cv *converter) newline() {
	if cv.last != 0 && cv.last != '\n' {
		cv.append("\n")
	}
}

// atLineStart returns true if nothing but a newline precedes the next rune.
func (cv *converter) atLineStart() bool {
	return cv.last == 0 || cv.last == '\n'
}

// start handles a start element. Void elements are complete on return.
func (cv *converter) start(se xml.StartElement) {
	tag := strings.ToLower(se.Name.Local)
	var sty rich.Style
	var para rich.Paragraph
	var lk *rich.Link
	switch tag {
	case "b", "strong":
		sty.SetWeight(rich.Bold)
	case "i", "em", "cite", "dfn", "var":
		sty.SetSlant(rich.Italic)
	case "u", "ins":
		sty.SetDecoration(rich.Underline)
	case "s", "del", "strike":
		sty.SetDecoration(rich.LineThrough)
	case "code", "kbd", "samp", "tt":
		sty.SetFamily("monospace")
	case "mark":
		sty.SetBackground(color.RGBA{0xff, 0xff, 0x00, 0xff})
	case "a":
		sty.SetColor(LinkColor).SetDecoration(rich.Underline)
		lk = &rich.Link{}
		for _, at := range se.Attr {
			switch at.Name.Local {
			case "href":
				lk.URL = at.Value
			case "id", "name":
				lk.ID = at.Value
			}
		}
		if lk.ID == "" {
			lk.ID = lk.URL
		}
	case "q":
		cv.append("\u201c")
	case "p", "div":
		cv.newline()
	case "br":
		cv.append("\n")
		return
	case "img", "object":
		cv.placeholder(se)
		return
	case "style":
		cv.style = &strings.Builder{}
	case "span", "font", "pre", "html", "head", "body":
	default:
		cv.errorf("%q tag not recognized", tag)
	}
	cv.applySheet(tag, &sty, &para)
	for _, at := range se.Attr {
		if at.Name.Local != "class" {
			continue
		}
		for _, cl := range strings.Fields(at.Value) {
			cv.applySheet("."+cl, &sty, &para)
			cv.applySheet(tag+"."+cl, &sty, &para)
		}
	}
	for _, at := range se.Attr {
		switch at.Name.Local {
		case "style":
			cv.styleProps(at.Value, &sty, &para)
		case "color":
			cv.cssProp("color", at.Value, &sty, &para)
		case "align":
			cv.cssProp("text-align", at.Value, &sty, &para)
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
	if lk != nil {
		mark(cv.b.PushLink(*lk))
	}
	if sty.Set != 0 {
		mark(cv.b.PushStyle(sty))
	}
	cv.tags = append(cv.tags, tag)
	cv.depths = append(cv.depths, depth)
}

// end handles an end element, which must match the innermost open one.
func (cv *converter) end(name string) {
	tag := strings.ToLower(name)
	switch tag {
	case "br", "img", "object":
		return
	}
	n := len(cv.tags)
	if n == 0 || cv.tags[n-1] != tag {
		cur := ""
		if n > 0 {
			cur = cv.tags[n-1]
		}
		cv.errorf("end tag %q does not match current tag %q", tag, cur)
		if n == 0 {
			return
		}
	}
	switch cv.tags[n-1] {
	case "style":
		cv.parseSheet()
	case "q":
		cv.append("\u201d")
	case "p", "div":
		cv.newline()
	}
	if d := cv.depths[n-1]; d >= 0 {
		cv.b.PopTo(d)
	}
	cv.tags = cv.tags[:n-1]
	cv.depths = cv.depths[:n-1]
}

// placeholder appends an inline placeholder for an img or object element,
// named by its id, or src if it has no id. Sizes given as attributes
// replace any given for the same name.
func (cv *converter) placeholder(se xml.StartElement) {
	id := ""
	sz := rich.PlaceholderSize{}
	set := false
	for _, at := range se.Attr {
		switch at.Name.Local {
		case "id":
			id = at.Value
		case "src", "data":
			if id == "" {
				id = at.Value
			}
		}
	}
	if psz, ok := cv.sizes[id]; ok {
		sz = psz
	}
	for _, at := range se.Attr {
		switch at.Name.Local {
		case "width", "height":
			f, err := cssLength(at.Value)
			if err != nil {
				cv.errorf("%s %q: %v", se.Name.Local, at.Name.Local, err)
				continue
			}
			set = true
			if at.Name.Local == "width" {
				sz.Width = f
			} else {
				sz.Height = f
			}
		case "align":
			if err := sz.Align.UnmarshalText([]byte(strings.ToLower(at.Value))); err != nil {
				cv.errorf("%s align: %v", se.Name.Local, err)
				continue
			}
			set = true
		}
	}
	if set {
		cv.sizes[id] = sz
	}
	cv.b.AppendPlaceholder(id)
	cv.last = rich.PlaceholderRune
}

// text returns the text, with any open elements ended,
// as HTML allows for elements such as <p>.
func (cv *converter) text() *rich.Text {
	return cv.b.Build(cv.sizes)
}

// parseSheet parses the rules of the <style> element that just ended.
// Only rules with simple tag and class selectors can apply.
func (cv *converter) parseSheet() {
	src := cv.style.String()
	cv.style = nil
	ss, err := parser.Parse(src)
	if err != nil {
		cv.errorf("style sheet: %v", err)
		return
	}
	for _, r := range ss.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		for _, sel := range r.Selectors {
			sel = strings.ToLower(strings.TrimSpace(sel))
			cv.sheet[sel] = append(cv.sheet[sel], r.Declarations...)
		}
	}
}

// applySheet sets properties from the style sheet rules for the given selector.
func (cv *converter) applySheet(sel string, sty *rich.Style, para *rich.Paragraph) {
	for _, d := range cv.sheet[sel] {
		cv.cssProp(strings.ToLower(d.Property), d.Value, sty, para)
	}
}

// styleProps sets properties from a CSS declaration list such as
// "font-weight: bold; color: red".
func (cv *converter) styleProps(decl string, sty *rich.Style, para *rich.Paragraph) {
	if d := strings.TrimSpace(decl); d != "" && !strings.HasSuffix(d, ";") {
		decl = d + ";" // the last value is only ended by a semicolon
	}
	ds, err := parser.ParseDeclarations(decl)
	if err != nil {
		cv.errorf("style %q: %v", decl, err)
		return
	}
	for _, d := range ds {
		cv.cssProp(strings.ToLower(d.Property), d.Value, sty, para)
	}
}

// cssProp sets one CSS property. Unsupported properties are ignored.
func (cv *converter) cssProp(key, val string, sty *rich.Style, para *rich.Paragraph) {
	lval := strings.ToLower(val)
	switch key {
	case "font-weight":
		switch lval {
		case "bold", "bolder":
			sty.SetWeight(rich.Bold)
		case "normal", "lighter":
			sty.SetWeight(rich.Normal)
		default:
			n, err := strconv.Atoi(lval)
			if err != nil {
				cv.errorf("font-weight %q: %v", val, err)
				return
			}
			sty.SetWeight(weightFromNumber(n))
		}
	case "font-style":
		if lval == "italic" || lval == "oblique" {
			sty.SetSlant(rich.Italic)
		} else {
			sty.SetSlant(rich.SlantNormal)
		}
	case "font-family":
		sty.SetFamily(strings.Trim(strings.Split(val, ",")[0], ` "'`))
	case "letter-spacing":
		f, err := strconv.ParseFloat(strings.TrimSuffix(lval, "em"), 32)
		if err != nil {
			cv.errorf("letter-spacing %q: must be in em units: %v", val, err)
			return
		}
		sty.SetLetterSpacing(float32(f))
	case "font-size", "line-height", "text-indent":
		f, err := cssLength(lval)
		if err != nil {
			cv.errorf("%s %q: %v", key, val, err)
			return
		}
		switch key {
		case "font-size":
			sty.SetSize(f)
		case "line-height":
			para.SetLineHeight(f)
		case "text-indent":
			para.SetIndent(f)
		}
	case "color", "background-color", "background":
		c, err := rich.ParseColor(lval)
		if err != nil {
			cv.errorf("%s: %v", key, err)
			return
		}
		if key == "color" {
			sty.SetColor(c)
		} else {
			sty.SetBackground(c)
		}
	case "text-decoration", "text-decoration-line":
		var d rich.Decorations
		for _, f := range strings.Fields(lval) {
			switch f {
			case "underline":
				d |= rich.Underline
			case "line-through":
				d |= rich.LineThrough
			}
		}
		sty.SetDecoration(d)
	case "text-align":
		switch lval {
		case "left", "start":
			para.SetAlign(rich.Start)
		case "right", "end":
			para.SetAlign(rich.End)
		case "center":
			para.SetAlign(rich.Center)
		case "justify":
			para.SetAlign(rich.Justify)
		}
	}
}

// cssLength parses a length in dots, with an optional px or pt unit.
func cssLength(s string) (float32, error) {
	s = strings.TrimSpace(s)
	scale := float32(1)
	switch {
	case strings.HasSuffix(s, "px"):
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "pt"):
		s = s[:len(s)-2]
		scale = 96.0 / 72.0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(f) * scale, nil
}

// weightFromNumber returns the weight nearest to a CSS numeric weight.
func weightFromNumber(n int) rich.Weights {
	best := rich.Normal
	bestd := float32(1e6)
	for w := rich.Normal; w <= rich.Black; w++ {
		d := w.ToFloat32() - float32(n)
		if d < 0 {
			d = -d
		}
		if d < bestd {
			best, bestd = w, d
		}
	}
	return best
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
