// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedcanvas provides a [shaped.Measurer] using the font
// faces of github.com/tdewolff/canvas, for text that is laid out
// for rendering to PDF, SVG or images with canvas.
package shapedcanvas

import (
	"image/color"
	"sync"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers/fonts"
	"github.com/tdewolff/canvas"
)

// mmToDots converts the millimeters of canvas to dots, which are
// points at 72 DPI, as are the font sizes.
const mmToDots = 72 / 25.4

type faceKey struct {
	index int
	size  float32
}

// Measurer measures text with canvas font faces.
// It is safe for concurrent use.
type Measurer struct {
	mu       sync.Mutex
	families map[string]*canvas.FontFamily
	faces    map[faceKey]*canvas.FontFace
}

// New returns a new Measurer with the embedded fonts loaded.
func New() *Measurer {
	m := &Measurer{families: map[string]*canvas.FontFamily{}, faces: map[faceKey]*canvas.FontFace{}}
	for i := range fonts.Fonts {
		f := &fonts.Fonts[i]
		fam, ok := m.families[f.Family]
		if !ok {
			fam = canvas.NewFontFamily(f.Family)
			m.families[f.Family] = fam
		}
		errors.Log(fam.LoadFont(f.TTF, 0, fontStyle(f.Weight, f.Slant)))
	}
	return m
}

// fontStyle returns the canvas font style for the given weight and slant.
func fontStyle(w rich.Weights, sl rich.Slants) canvas.FontStyle {
	st := canvas.FontRegular
	switch {
	case w == rich.Medium:
		st = canvas.FontMedium
	case w.IsBold():
		st = canvas.FontBold
	}
	if sl == rich.Italic {
		st |= canvas.FontItalic
	}
	return st
}

// face returns the face for the given font. mu must be locked.
func (m *Measurer) face(fn *shaped.Font) *canvas.FontFace {
	key := faceKey{fonts.Index(fn), fn.Size}
	if fc, ok := m.faces[key]; ok {
		return fc
	}
	f := &fonts.Fonts[key.index]
	fc := m.families[f.Family].Face(float64(fn.Size), color.Black, fontStyle(f.Weight, f.Slant), canvas.FontNormal)
	m.faces[key] = fc
	return fc
}

func (m *Measurer) RunWidth(txt []rune, fn *shaped.Font) float32 {
	if len(txt) == 0 || fn.Size <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return float32(m.face(fn).TextWidth(string(txt)) * mmToDots)
}

func (m *Measurer) Metrics(fn *shaped.Font) shaped.FontMetrics {
	if fn.Size <= 0 {
		return shaped.FontMetrics{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	fm := m.face(fn).Metrics()
	asc, desc := float32(fm.Ascent*mmToDots), float32(fm.Descent*mmToDots)
	return shaped.FontMetrics{Ascent: asc, Descent: desc, LineGap: max(float32(fm.LineHeight*mmToDots)-asc-desc, 0)}
}

func (m *Measurer) HasFamily(family string) bool {
	_, ok := fonts.Family(family)
	return ok
}

func (m *Measurer) DefaultFamily() string {
	return fonts.Go
}

func (m *Measurer) FontList() []shaped.FontInfo {
	return fonts.FontList()
}
