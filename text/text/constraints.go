// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"fmt"
	"strings"

	"cogentcore.org/textlayout/math32"
)

// Overflows are the policies for text that does not fit
// within the line or size limits of its [Constraints].
type Overflows int32 //enums:enum -transform kebab

const (
	// Clip drops the lines that do not fit, without any marker.
	Clip Overflows = iota

	// Ellipsis truncates the last visible line and appends an ellipsis.
	Ellipsis

	// Visible drops the excess lines from layout like [Clip], but the
	// content of a line is allowed to draw beyond the size limits.
	Visible
)

var overflowNames = []string{"clip", "ellipsis", "visible"}

func (o Overflows) String() string {
	if o < 0 || int(o) >= len(overflowNames) {
		return fmt.Sprintf("Overflows(%d)", int(o))
	}
	return overflowNames[o]
}

// MarshalText implements [encoding.TextMarshaler].
func (o Overflows) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Overflows) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, nm := range overflowNames {
		if nm == s {
			*o = Overflows(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Overflows", s)
}

// Constraints are the limits on the size of laid out text.
// The zero value is not useful: start from [NewConstraints] or [Unbounded].
type Constraints struct {

	// MaxWidth is the available width in dots. Lines are wrapped to fit
	// within it. [math32.Infinity] means unbounded.
	MaxWidth float32

	// MaxHeight is the available height in dots. [math32.Infinity] means unbounded.
	MaxHeight float32

	// MaxLines is the maximum number of lines. 0 means unlimited.
	MaxLines int

	// MinLines is the minimum number of lines of height to reserve,
	// even if there is less content.
	MinLines int

	// SoftWrap enables wrapping at word boundaries. Without it,
	// lines only break at explicit newlines.
	SoftWrap bool

	// Overflow is the policy for content beyond the limits.
	Overflow Overflows

	// ReservedTrailingMargin is width withheld from the last visible line
	// when it is truncated, to leave room for trailing content after the
	// ellipsis such as a "more" button.
	ReservedTrailingMargin float32
}

// NewConstraints returns soft-wrapping constraints for the given width
// with no other limits.
func NewConstraints(maxWidth float32) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: math32.Infinity, SoftWrap: true}
}

// Unbounded returns constraints with no limits at all.
func Unbounded() Constraints {
	return NewConstraints(math32.Infinity)
}

// Sanitize returns the constraints with invalid values replaced:
// NaN limits become unbounded, negative sizes and counts become 0.
func (c Constraints) Sanitize() Constraints {
	if math32.IsNaN(c.MaxWidth) {
		c.MaxWidth = math32.Infinity
	}
	if math32.IsNaN(c.MaxHeight) {
		c.MaxHeight = math32.Infinity
	}
	c.MaxWidth = max(c.MaxWidth, 0)
	c.MaxHeight = max(c.MaxHeight, 0)
	c.MaxLines = max(c.MaxLines, 0)
	c.MinLines = max(c.MinLines, 0)
	c.ReservedTrailingMargin = math32.NonNegative(c.ReservedTrailingMargin)
	return c
}

// HasLineLimit returns true if there is a maximum number of lines.
func (c Constraints) HasLineLimit() bool {
	return c.MaxLines > 0
}

func (c Constraints) String() string {
	return fmt.Sprintf("max: (%g, %g) lines: [%d, %d] soft-wrap: %v overflow: %s margin: %g",
		c.MaxWidth, c.MaxHeight, c.MinLines, c.MaxLines, c.SoftWrap, c.Overflow, c.ReservedTrailingMargin)
}
