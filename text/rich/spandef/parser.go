// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spandef parses a compact span definition language into
// a [rich.Text]. Text is given as quoted strings, and is styled by
// enclosing it in braces that start with attributes:
//
//	"Some " { weight=bold color=#c00 "bold red" } " text, "
//	{ link=docs url="https://example.com" "a link" }
//	{ align=center "a centered paragraph\n" }
//	" and an icon " [ icon width=16 height=16 align=baseline ] "."
//
// Groups can be nested, with inner attributes overriding outer ones.
// Attributes without a value are flags, e.g., { italic underline "x" }.
// Placeholders are given in brackets with an identifier and their size.
// Comments start with // and continue to the end of the line.
package spandef

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	spanLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})\b`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+|\.\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[][{}=]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(spanLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Document is the root of a span definition.
type Document struct {
	Nodes []*Node `parser:"@@*"`
}

// Node is one element of the text: a string, a group or a placeholder.
type Node struct {
	Text        *StringLiteral   `parser:"  @String"`
	Group       *Group           `parser:"| @@"`
	Placeholder *PlaceholderNode `parser:"| @@"`
}

// Group applies attributes to the nodes within it.
type Group struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Attrs []*Attr        `parser:"'{' @@*"`
	Nodes []*Node        `parser:"@@* '}'"`
}

// PlaceholderNode is an inline placeholder with an identifier.
type PlaceholderNode struct {
	Pos   lexer.Position `parser:"" json:"-"`
	ID    string         `parser:"'[' @Ident"`
	Attrs []*Attr        `parser:"@@* ']'"`
}

// Attr is a key with an optional value.
type Attr struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"( '=' @@ )?"`
}

// Value is an attribute value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *float64       `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the value as a string.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return strconv.FormatFloat(*v.Number, 'g', -1, 64)
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// ParseDocument parses a span definition from the reader.
func ParseDocument(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseDocumentString parses a span definition from the string.
func ParseDocumentString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
