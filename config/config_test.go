// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "gotext", c.Measurer)
	assert.Equal(t, Auto, c.Input)
	assert.Equal(t, Text, c.Output)
	assert.Equal(t, float32(16), c.Style.Size)
	assert.Equal(t, "…", c.Style.Ellipsis)
	assert.True(t, c.Constraints.SoftWrap)
	assert.Equal(t, text.Ellipsis, c.Constraints.Overflow)

	cons := c.TextConstraints()
	assert.Equal(t, math32.Infinity, cons.MaxWidth)
	assert.Equal(t, math32.Infinity, cons.MaxHeight)

	ts, err := c.TextStyle()
	require.NoError(t, err)
	assert.Equal(t, "sans-serif", ts.Font.Family)
	assert.Equal(t, uint8(0xff), ts.Font.Color.A)
}

const example = `
measurer = "mono"
input = "spans"
output = "json"

[style]
family = "monospace"
size = 10.0
color = "#c00"
align = "center"

[constraints]
max-width = 100.0
max-lines = 2
overflow = "clip"
reserved-trailing-margin = 20.0

[placeholders.icon]
width = 16.0
height = 12.0
align = "baseline"
`

func TestRead(t *testing.T) {
	c := New()
	require.NoError(t, c.Read(strings.NewReader(example)))
	assert.Equal(t, "mono", c.Measurer)
	assert.Equal(t, Spans, c.Input)
	assert.Equal(t, JSON, c.Output)
	assert.Equal(t, float32(1), c.Style.LineSpacing)

	cons := c.TextConstraints()
	assert.Equal(t, float32(100), cons.MaxWidth)
	assert.Equal(t, math32.Infinity, cons.MaxHeight)
	assert.Equal(t, 2, cons.MaxLines)
	assert.Equal(t, text.Clip, cons.Overflow)
	assert.True(t, cons.SoftWrap)
	assert.Equal(t, float32(20), cons.ReservedTrailingMargin)

	ts, err := c.TextStyle()
	require.NoError(t, err)
	assert.Equal(t, rich.Center, ts.Align)
	assert.Equal(t, uint8(0xcc), ts.Font.Color.R)
	assert.Equal(t, map[string]rich.PlaceholderSize{"icon": {Width: 16, Height: 12, Align: rich.AlignBaseline}}, c.Sizes())
}

func TestReadErrors(t *testing.T) {
	assert.Error(t, New().Read(strings.NewReader(`wobble = 1`)))
	assert.Error(t, New().Read(strings.NewReader(`output = "pdf"`)))

	c := New()
	c.Style.Color = "nope"
	_, err := c.TextStyle()
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "richtext.toml")
	c := New()
	c.Output = YAML
	c.Constraints.MaxWidth = 320
	c.Placeholders = map[string]Placeholder{"img": {Width: 4, Height: 5, Align: rich.AlignTop}}
	require.NoError(t, c.Save(fn))

	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, o)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	over := filepath.Join(t.TempDir(), "over.toml")
	require.NoError(t, os.WriteFile(over, []byte(`output = "dump"`), 0644))
	o, err = Open(fn, over)
	require.NoError(t, err)
	assert.Equal(t, Dump, o.Output)
	assert.Equal(t, float32(320), o.Constraints.MaxWidth)
}

func TestInputs(t *testing.T) {
	assert.Equal(t, HTML, Auto.ForFile("a/b.HTML"))
	assert.Equal(t, Spans, Auto.ForFile("x.spans"))
	assert.Equal(t, Plain, Auto.ForFile("x.txt"))
	assert.Equal(t, HTMLPre, HTMLPre.ForFile("x.spans"))
	assert.Equal(t, "html-pre", HTMLPre.String())
}
