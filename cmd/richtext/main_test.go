// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/textlayout/config"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/rich"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testRunner(t *testing.T, output config.Outputs) (*runner, *bytes.Buffer) {
	cfg := config.New()
	cfg.Measurer = "mono"
	cfg.Output = output
	cfg.Style.Family = "monospace"
	cfg.Style.Size = 10
	var buf bytes.Buffer
	r, err := newRunner(cfg, &buf)
	require.NoError(t, err)
	return r, &buf
}

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestReadText(t *testing.T) {
	tx, err := readText([]byte(`{ bold "b" } "x"`), config.Spans, nil)
	require.NoError(t, err)
	assert.Equal(t, "bx", tx.String())
	require.Len(t, tx.Styles, 1)

	tx, err = readText([]byte("<b>b</b>  x"), config.HTML, nil)
	require.NoError(t, err)
	assert.Equal(t, "b x", tx.String())

	tx, err = readText([]byte("<b>b</b>  x"), config.HTMLPre, nil)
	require.NoError(t, err)
	assert.Equal(t, "b  x", tx.String())

	tx, err = readText([]byte("<b>b</b>"), config.Plain, nil)
	require.NoError(t, err)
	assert.Equal(t, "<b>b</b>", tx.String())
	assert.Empty(t, tx.Styles)

	sizes := map[string]rich.PlaceholderSize{"icon": {Width: 5, Height: 5}}
	tx, err = readText([]byte(`"a" [icon]`), config.Spans, sizes)
	require.NoError(t, err)
	assert.Equal(t, float32(5), tx.Placeholders[0].Placeholder.Width)

	_, err = readText([]byte(`{ "open"`), config.Spans, nil)
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	pt, err := parsePoint("12.5, 3")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(12.5, 3), pt)
	_, err = parsePoint("12")
	assert.Error(t, err)
	_, err = parsePoint("a,1")
	assert.Error(t, err)
	_, err = parsePoint("1,b")
	assert.Error(t, err)
}

func TestRunText(t *testing.T) {
	r, buf := testRunner(t, config.Text)
	pt := math32.Vec2(40, 5)
	r.hit = &pt
	fn := writeFile(t, "hello.txt", "hello world")
	require.NoError(t, r.run(fn))
	out := buf.String()
	assert.Contains(t, out, "hello world\n")
	assert.Contains(t, out, "lines: 1 truncated: false")
	assert.Contains(t, out, "-- hit: span: 0 rune: 6 line: 0")

	assert.Error(t, r.run(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestRunTruncated(t *testing.T) {
	r, buf := testRunner(t, config.Text)
	r.cfg.Constraints.MaxWidth = 30
	r.cfg.Constraints.MaxLines = 1
	fn := writeFile(t, "long.spans", `"abcdefghij" [icon width=4 height=4]`)
	require.NoError(t, r.run(fn))
	assert.Contains(t, buf.String(), "truncated: true")
	assert.Contains(t, buf.String(), "\u2026")
}

func TestRunJSON(t *testing.T) {
	r, buf := testRunner(t, config.JSON)
	fn := writeFile(t, "link.html", `a <a href="https://example.com">link</a>`)
	require.NoError(t, r.run(fn))
	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	lines := res["Lines"].(map[string]any)
	assert.Len(t, lines["Lines"], 1)
	assert.Equal(t, false, lines["Truncated"])
	assert.NotContains(t, res, "Hit")
}

func TestRunYAML(t *testing.T) {
	r, buf := testRunner(t, config.YAML)
	pt := math32.Vec2(1000, 5)
	r.hit = &pt
	fn := writeFile(t, "plain.txt", "one\ntwo")
	require.NoError(t, r.run(fn))
	var res map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.Contains(t, res, "hit")
	assert.Equal(t, -1, res["hit"].(map[string]any)["span"])
}

func TestRunDump(t *testing.T) {
	r, buf := testRunner(t, config.Dump)
	fn := writeFile(t, "plain.txt", "dump me")
	require.NoError(t, r.run(fn))
	assert.Contains(t, buf.String(), "Lines")
	assert.NotContains(t, buf.String(), "Truncated")

	buf.Reset()
	r.cfg.Constraints.MaxWidth = 30
	r.cfg.Constraints.MaxLines = 1
	require.NoError(t, r.run(fn))
	assert.Contains(t, buf.String(), "Truncated: true")
}

func TestListFonts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listFonts(&buf, "ximage"))
	assert.Contains(t, buf.String(), "Go Mono")
	assert.Error(t, listFonts(&buf, "nope"))
}

func TestChanged(t *testing.T) {
	assert.True(t, changed(fsnotify.Event{Op: fsnotify.Write}))
	assert.True(t, changed(fsnotify.Event{Op: fsnotify.Create | fsnotify.Chmod}))
	assert.False(t, changed(fsnotify.Event{Op: fsnotify.Chmod}))
	assert.False(t, changed(fsnotify.Event{Op: fsnotify.Remove}))
}
