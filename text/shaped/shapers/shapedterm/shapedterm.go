// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedterm provides a [shaped.Measurer] for terminal cells,
// using github.com/mattn/go-runewidth for the number of cells that
// each character takes, e.g., 2 for wide East Asian characters.
// With a font size of 1, widths and heights are in cells.
package shapedterm

import (
	"cogentcore.org/textlayout/text/shaped"
	"github.com/mattn/go-runewidth"
)

// Measurer measures text in terminal cells.
type Measurer struct {
	// Aspect is the width of a cell relative to its height.
	Aspect float32

	// cond is the runewidth condition.
	cond *runewidth.Condition
}

// New returns a new Measurer, with the East Asian ambiguous
// width characters taking 2 cells if eastAsian is true.
func New(eastAsian bool) *Measurer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Measurer{Aspect: 1, cond: cond}
}

// Cells returns the number of cells of the given text.
func (m *Measurer) Cells(txt []rune) int {
	n := 0
	for _, r := range txt {
		n += m.cond.RuneWidth(r)
	}
	return n
}

func (m *Measurer) RunWidth(txt []rune, fn *shaped.Font) float32 {
	return float32(m.Cells(txt)) * m.Aspect * fn.Size
}

func (m *Measurer) Metrics(fn *shaped.Font) shaped.FontMetrics {
	return shaped.FontMetrics{Ascent: fn.Size, Descent: 0}
}

// HasFamily returns true for all families, as a terminal has one font.
func (m *Measurer) HasFamily(family string) bool {
	return true
}

func (m *Measurer) DefaultFamily() string {
	return "monospace"
}
