// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := R(2, 8)
	assert.Equal(t, 6, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, R(3, 3).IsEmpty())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(8))
	assert.True(t, r.Covers(R(2, 5)))
	assert.False(t, r.Covers(R(1, 5)))
	assert.Equal(t, R(2, 5), r.Intersect(R(0, 5)))
	assert.Equal(t, R(-1, -1), r.Intersect(R(8, 10)))
	assert.Equal(t, "[2,8)", r.String())
}

func TestRangeClamp(t *testing.T) {
	assert.Equal(t, R(0, 5), R(-3, 9).Clamp(5))
	assert.Equal(t, R(1, 4), R(4, 1).Clamp(5))
	assert.Equal(t, R(5, 5), R(7, 9).Clamp(5))
}

func TestWordAt(t *testing.T) {
	txt := []rune("The lazy fox")
	assert.Equal(t, R(4, 8), WordAt(txt, 5))
	assert.Equal(t, R(0, 3), WordAt(txt, 0))
	assert.Equal(t, R(3, 8), WordAt(txt, 3))
	assert.Equal(t, R(9, 12), WordAt(txt, 40))
	assert.Equal(t, Range{}, WordAt(nil, 3))
	assert.True(t, IsWordBreak(' ', 'a'))
	assert.False(t, IsWordBreak('\'', 's'))
	assert.True(t, IsWordBreak('\'', ' '))
}
