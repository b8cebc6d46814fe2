// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides the embedded font data used by the font based
// measurers, so that they work the same on all platforms without
// depending on system fonts. It has the Go fonts for sans-serif and
// monospace text, and Latin Modern Roman for serif text.
package fonts

import (
	"strings"

	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/shaped"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// see: https://blog.golang.org/go-fonts

// Font is one font file of a family.
type Font struct {
	// Family is the family name.
	Family string

	// Weight is the weight of the font.
	Weight rich.Weights

	// Slant is the slant of the font.
	Slant rich.Slants

	// TTF is the TrueType or OpenType font data.
	TTF []byte
}

// Family names.
const (
	Go          = "Go"
	GoMono      = "Go Mono"
	LatinModern = "Latin Modern Roman"
)

// Fonts are all the available fonts.
var Fonts = []Font{
	{Go, rich.Normal, rich.SlantNormal, goregular.TTF},
	{Go, rich.Normal, rich.Italic, goitalic.TTF},
	{Go, rich.Medium, rich.SlantNormal, gomedium.TTF},
	{Go, rich.Medium, rich.Italic, gomediumitalic.TTF},
	{Go, rich.Bold, rich.SlantNormal, gobold.TTF},
	{Go, rich.Bold, rich.Italic, gobolditalic.TTF},
	{GoMono, rich.Normal, rich.SlantNormal, gomono.TTF},
	{GoMono, rich.Normal, rich.Italic, gomonoitalic.TTF},
	{GoMono, rich.Bold, rich.SlantNormal, gomonobold.TTF},
	{GoMono, rich.Bold, rich.Italic, gomonobolditalic.TTF},
	{LatinModern, rich.Normal, rich.SlantNormal, lmroman10regular.TTF},
	{LatinModern, rich.Normal, rich.Italic, lmroman10italic.TTF},
	{LatinModern, rich.Bold, rich.SlantNormal, lmroman10bold.TTF},
	{LatinModern, rich.Bold, rich.Italic, lmroman10bolditalic.TTF},
}

// aliases are generic family names mapped to an embedded family.
var aliases = map[string]string{
	"go":                 Go,
	"go mono":            GoMono,
	"latin modern roman": LatinModern,
	"latin modern":       LatinModern,
	"sans-serif":         Go,
	"serif":              LatinModern,
	"system-ui":          Go,
	"monospace":          GoMono,
}

// Family returns the embedded family for the given family name,
// which can be a generic name such as "monospace", and
// false if it is not one of the embedded families.
func Family(family string) (string, bool) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(family))]
	return f, ok
}

// Index returns the index in [Fonts] of the font that best matches
// the given font: unknown families use [Go], weights are matched to
// the nearest available weight, and slants are matched exactly.
func Index(fn *shaped.Font) int {
	fam, ok := Family(fn.Family)
	if !ok {
		fam = Go
	}
	best, dist := 0, float32(-1)
	for i := range Fonts {
		f := &Fonts[i]
		if f.Family != fam || f.Slant != fn.Slant {
			continue
		}
		d := f.Weight.ToFloat32() - fn.Weight.ToFloat32()
		if d < 0 {
			d = -d
		}
		if dist < 0 || d < dist {
			best, dist = i, d
		}
	}
	return best
}

// FontList returns the information about each of the fonts.
func FontList() []shaped.FontInfo {
	fi := make([]shaped.FontInfo, len(Fonts))
	for i := range Fonts {
		f := &Fonts[i]
		fi[i] = shaped.FontInfo{Family: f.Family, Weight: f.Weight, Slant: f.Slant}
	}
	return fi
}
