// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the richtext tool.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/base/reflectx"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/text"
)

// Config is the main config struct that contains all
// of the configuration options for the richtext tool.
type Config struct {

	// Measurer is the name of the backend that measures text.
	Measurer string `toml:"measurer" default:"gotext"`

	// Input is the format of the input file.
	Input Inputs `toml:"input" default:"auto"`

	// Output is the format in which the layout is written.
	Output Outputs `toml:"output" default:"text"`

	// Style is the default style of the text.
	Style Style `toml:"style"`

	// Constraints are the limits that the text is laid out within.
	Constraints Constraints `toml:"constraints"`

	// Placeholders are the sizes of inline placeholders by id.
	Placeholders map[string]Placeholder `toml:"placeholders"`
}

// Style is the default style of the text.
type Style struct {

	// Family is the font family.
	Family string `toml:"family" default:"sans-serif"`

	// Size is the font size in dots.
	Size float32 `toml:"size" default:"16"`

	// Color is the text color, as a hex or named color.
	Color string `toml:"color" default:"black"`

	// LineSpacing is a multiplier on the font-derived line height.
	LineSpacing float32 `toml:"line-spacing" default:"1"`

	// Align is the default alignment of lines.
	Align rich.Aligns `toml:"align" default:"start"`

	// Ellipsis is the marker appended to truncated text.
	Ellipsis string `toml:"ellipsis" default:"…"`
}

// Constraints are the layout limits. Zero sizes are unbounded.
type Constraints struct {

	// MaxWidth is the available width in dots.
	MaxWidth float32 `toml:"max-width"`

	// MaxHeight is the available height in dots.
	MaxHeight float32 `toml:"max-height"`

	// MaxLines is the maximum number of lines, 0 for unlimited.
	MaxLines int `toml:"max-lines"`

	// MinLines is the number of lines of height to reserve.
	MinLines int `toml:"min-lines"`

	// SoftWrap enables wrapping at word boundaries.
	SoftWrap bool `toml:"soft-wrap" default:"true"`

	// Overflow is the policy for content beyond the limits.
	Overflow text.Overflows `toml:"overflow" default:"ellipsis"`

	// ReservedTrailingMargin is width withheld from a truncated last line.
	ReservedTrailingMargin float32 `toml:"reserved-trailing-margin"`
}

// Placeholder is the size of an inline placeholder.
type Placeholder struct {
	Width  float32                `toml:"width"`
	Height float32                `toml:"height"`
	Align  rich.PlaceholderAligns `toml:"align"`
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the values of the config from its `default:` field tags.
func (c *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// TextStyle returns the [text.Style] for the config style.
func (c *Config) TextStyle() (*text.Style, error) {
	ts := text.NewStyle()
	ts.Align = c.Style.Align
	ts.LineSpacing = c.Style.LineSpacing
	ts.Ellipsis = c.Style.Ellipsis
	if c.Style.Family != "" {
		ts.Font.SetFamily(c.Style.Family)
	}
	if c.Style.Size > 0 {
		ts.Font.SetSize(c.Style.Size)
	}
	if c.Style.Color != "" {
		clr, err := rich.ParseColor(c.Style.Color)
		if err != nil {
			return ts, fmt.Errorf("config: style color: %w", err)
		}
		ts.Font.SetColor(clr)
	}
	return ts, nil
}

// TextConstraints returns the [text.Constraints] for the config,
// with zero maximum sizes converted to unbounded ones.
func (c *Config) TextConstraints() text.Constraints {
	cc := c.Constraints
	unbounded := func(v float32) float32 {
		if v <= 0 {
			return math32.Infinity
		}
		return v
	}
	return text.Constraints{
		MaxWidth:               unbounded(cc.MaxWidth),
		MaxHeight:              unbounded(cc.MaxHeight),
		MaxLines:               cc.MaxLines,
		MinLines:               cc.MinLines,
		SoftWrap:               cc.SoftWrap,
		Overflow:               cc.Overflow,
		ReservedTrailingMargin: cc.ReservedTrailingMargin,
	}
}

// Sizes returns the placeholder sizes by id.
func (c *Config) Sizes() map[string]rich.PlaceholderSize {
	sizes := make(map[string]rich.PlaceholderSize, len(c.Placeholders))
	for id, ph := range c.Placeholders {
		sizes[id] = rich.PlaceholderSize{Width: ph.Width, Height: ph.Height, Align: ph.Align}
	}
	return sizes
}

// Inputs are the formats of input files.
type Inputs int32 //enums:enum -transform kebab

const (
	// Auto determines the format from the file extension,
	// using [Plain] for unknown extensions.
	Auto Inputs = iota

	// Plain is unstyled text.
	Plain

	// Spans is the span definition language.
	Spans

	// HTML is text with inline HTML formatting, with whitespace collapsed.
	HTML

	// HTMLPre is preformatted text with inline HTML formatting.
	HTMLPre
)

var inputNames = []string{"auto", "plain", "spans", "html", "html-pre"}

// ForFile returns the input format for the given file name,
// resolving [Auto] from its extension.
func (i Inputs) ForFile(fname string) Inputs {
	if i != Auto {
		return i
	}
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".spans":
		return Spans
	case ".html", ".htm":
		return HTML
	}
	return Plain
}

func (i Inputs) String() string {
	return enumString(int32(i), inputNames, "Inputs")
}

func (i Inputs) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Inputs) UnmarshalText(text []byte) error {
	return enumSet((*int32)(i), string(text), inputNames, "Inputs")
}

// Outputs are the formats in which a layout is written.
type Outputs int32 //enums:enum -transform kebab

const (
	// Text prints the lines with terminal colors and styles.
	Text Outputs = iota

	// JSON is the layout result as JSON.
	JSON

	// YAML is the layout result as YAML.
	YAML

	// Dump is a Go-syntax dump of the layout result.
	Dump
)

var outputNames = []string{"text", "json", "yaml", "dump"}

func (o Outputs) String() string {
	return enumString(int32(o), outputNames, "Outputs")
}

func (o Outputs) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outputs) UnmarshalText(text []byte) error {
	return enumSet((*int32)(o), string(text), outputNames, "Outputs")
}

func enumString(v int32, names []string, typ string) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, v)
	}
	return names[v]
}

func enumSet(v *int32, s string, names []string, typ string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range names {
		if nm == s {
			*v = int32(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s, must be one of: %s", s, typ, strings.Join(names, ", "))
}
