// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import "cogentcore.org/textlayout/text/rich"

// FontInfo contains basic information about a font available to a [Measurer].
type FontInfo struct {

	// Family is the font family name.
	Family string

	// Weight is the weight of this face.
	Weight rich.Weights

	// Slant is the slant of this face.
	Slant rich.Slants
}

// FontInfoExample is example text to demonstrate fonts.
var FontInfoExample = "AaBbCcIiPpQq12369$€¢?.:/()àáâãäåæç"

// Label returns a label for the font, e.g., "Go Mono bold italic".
func (fi FontInfo) Label() string {
	lb := fi.Family
	if fi.Weight != rich.Normal {
		lb += " " + fi.Weight.String()
	}
	if fi.Slant != rich.SlantNormal {
		lb += " " + fi.Slant.String()
	}
	return lb
}

// FontLister is implemented by measurers that can list their fonts.
type FontLister interface {
	FontList() []FontInfo
}
