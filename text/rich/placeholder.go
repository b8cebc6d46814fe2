// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// PlaceholderRune is the object replacement character that stands in
// the source for an inline placeholder.
const PlaceholderRune = '\uFFFC'

// Placeholder is an inline, externally sized slot embedded at a
// specific position in the text, e.g., for an inline image or widget.
type Placeholder struct {
	// ID identifies the placeholder to the caller.
	ID string

	// Width is the intrinsic width in dots.
	Width float32

	// Height is the intrinsic height in dots.
	Height float32

	// VerticalAlign determines how the placeholder is positioned
	// vertically relative to the line of text.
	VerticalAlign PlaceholderAligns
}

// PlaceholderSize is the intrinsic size of a named placeholder slot,
// supplied when building a [Text] with a [Builder].
type PlaceholderSize struct {
	Width, Height float32
	Align         PlaceholderAligns
}
