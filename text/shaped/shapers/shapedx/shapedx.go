// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedx provides a [shaped.Measurer] using the
// golang.org/x/image/font/opentype font faces of the embedded fonts.
// It measures glyph advances with kerning but without complex shaping.
package shapedx

import (
	"sync"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	index int
	size  float32
}

// Measurer measures text with x/image font faces.
// It is safe for concurrent use.
type Measurer struct {
	mu    sync.Mutex
	fonts map[int]*opentype.Font
	faces map[faceKey]font.Face
}

// New returns a new Measurer.
func New() *Measurer {
	return &Measurer{fonts: map[int]*opentype.Font{}, faces: map[faceKey]font.Face{}}
}

// face returns the font face for the given font, or nil if it
// could not be loaded. mu must be locked.
func (m *Measurer) face(fn *shaped.Font) font.Face {
	key := faceKey{fonts.Index(fn), fn.Size}
	if fc, ok := m.faces[key]; ok {
		return fc
	}
	f, ok := m.fonts[key.index]
	if !ok {
		var err error
		f, err = opentype.Parse(fonts.Fonts[key.index].TTF)
		if errors.Log(err) != nil {
			return nil
		}
		m.fonts[key.index] = f
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(fn.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if errors.Log(err) != nil {
		return nil
	}
	m.faces[key] = fc
	return fc
}

func (m *Measurer) RunWidth(txt []rune, fn *shaped.Font) float32 {
	if len(txt) == 0 || fn.Size <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	fc := m.face(fn)
	if fc == nil {
		return 0
	}
	return math32.FromFixed(font.MeasureString(fc, string(txt)))
}

func (m *Measurer) Metrics(fn *shaped.Font) shaped.FontMetrics {
	if fn.Size <= 0 {
		return shaped.FontMetrics{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	fc := m.face(fn)
	if fc == nil {
		return shaped.FontMetrics{}
	}
	fm := fc.Metrics()
	asc, desc := math32.FromFixed(fm.Ascent), math32.FromFixed(fm.Descent)
	return shaped.FontMetrics{Ascent: asc, Descent: desc, LineGap: max(math32.FromFixed(fm.Height)-asc-desc, 0)}
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
