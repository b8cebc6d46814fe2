// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedmono provides a [shaped.Measurer] in which every
// character has the same advance, for fixed-pitch output and for
// deterministic layout in tests.
package shapedmono

import (
	"strings"
	"unicode"

	"cogentcore.org/textlayout/text/shaped"
)

// Measurer is a fixed-pitch [shaped.Measurer]. All sizes are
// proportions of the font size.
type Measurer struct {

	// Advance is the advance of each character.
	Advance float32

	// Ascent is the font ascent.
	Ascent float32

	// Descent is the font descent.
	Descent float32

	// Families are the font families that are reported as available,
	// in addition to the Default.
	Families []string

	// Default is the default family name.
	Default string
}

// New returns a new [Measurer] with typical monospace proportions.
func New() *Measurer {
	return &Measurer{Advance: 0.6, Ascent: 0.8, Descent: 0.2, Default: "monospace"}
}

// RunWidth returns the number of characters times the advance,
// where combining marks and control characters have no advance.
func (m *Measurer) RunWidth(txt []rune, fn *shaped.Font) float32 {
	n := 0
	for _, r := range txt {
		if unicode.Is(unicode.Mn, r) || unicode.IsControl(r) {
			continue
		}
		n++
	}
	return float32(n) * m.Advance * fn.Size
}

func (m *Measurer) Metrics(fn *shaped.Font) shaped.FontMetrics {
	return shaped.FontMetrics{Ascent: m.Ascent * fn.Size, Descent: m.Descent * fn.Size}
}

func (m *Measurer) HasFamily(family string) bool {
	if strings.EqualFold(family, m.DefaultFamily()) {
		return true
	}
	for _, f := range m.Families {
		if strings.EqualFold(family, f) {
			return true
		}
	}
	return false
}

func (m *Measurer) DefaultFamily() string {
	if m.Default == "" {
		return "monospace"
	}
	return m.Default
}

func (m *Measurer) FontList() []shaped.FontInfo {
	fams := append([]string{m.DefaultFamily()}, m.Families...)
	fi := make([]shaped.FontInfo, len(fams))
	for i, f := range fams {
		fi[i].Family = f
	}
	return fi
}
