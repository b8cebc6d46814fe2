// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt provides a [shaped.Measurer] that uses the
// go-text/typesetting HarfBuzz shaper with the embedded fonts, so that
// widths include ligatures, kerning and complex script shaping.
package shapedgt

import (
	"bytes"
	"sync"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapers/fonts"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Measurer measures text by shaping it with go-text.
// It is safe for concurrent use.
type Measurer struct {
	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	faces  map[int]*font.Face

	// Language is the language used for shaping.
	Language language.Language
}

// New returns a new Measurer that shapes English text by default.
func New() *Measurer {
	m := &Measurer{faces: map[int]*font.Face{}, Language: language.NewLanguage("en")}
	m.shaper.SetFontCacheSize(32)
	return m
}

// face returns the face for the given font, or nil if it
// could not be loaded. mu must be locked.
func (m *Measurer) face(fn *shaped.Font) *font.Face {
	idx := fonts.Index(fn)
	if fc, ok := m.faces[idx]; ok {
		return fc
	}
	fc, err := font.ParseTTF(bytes.NewReader(fonts.Fonts[idx].TTF))
	if errors.Log(err) != nil {
		return nil
	}
	m.faces[idx] = fc
	return fc
}

// shape shapes the given text in the given font. mu must be locked.
func (m *Measurer) shape(txt []rune, fn *shaped.Font) (shaping.Output, bool) {
	fc := m.face(fn)
	if fc == nil || fn.Size <= 0 {
		return shaping.Output{}, false
	}
	in := shaping.Input{
		Text:      txt,
		RunStart:  0,
		RunEnd:    len(txt),
		Direction: di.DirectionLTR,
		Face:      fc,
		Size:      math32.ToFixed(fn.Size),
		Script:    language.Latin,
		Language:  m.Language,
	}
	if len(txt) > 0 {
		in.Script = language.LookupScript(txt[0])
	}
	return m.shaper.Shape(in), true
}

func (m *Measurer) RunWidth(txt []rune, fn *shaped.Font) float32 {
	if len(txt) == 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out, ok := m.shape(txt, fn)
	if !ok {
		return 0
	}
	return math32.FromFixed(out.Advance)
}

func (m *Measurer) Metrics(fn *shaped.Font) shaped.FontMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	out, ok := m.shape([]rune{' '}, fn)
	if !ok {
		return shaped.FontMetrics{}
	}
	lb := out.LineBounds
	return shaped.FontMetrics{Ascent: math32.FromFixed(lb.Ascent), Descent: -math32.FromFixed(lb.Descent), LineGap: math32.FromFixed(lb.Gap)}
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
