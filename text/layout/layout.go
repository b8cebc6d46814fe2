// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout runs the full text layout pipeline, from a [rich.Text]
// to [shaped.Lines], and provides a [Node] that keeps the layout of a
// changing text value up to date for its owner.
package layout

import (
	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/segment"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/text"
)

// Layout segments the given text into runs, measures them with the
// given measurer and lays them out within the given constraints.
// A nil text is laid out as empty text, and a nil style uses the
// defaults. The placeholder measurer can be nil, to use the
// intrinsic placeholder sizes. The result is independent of the
// inputs and is not modified afterwards.
func Layout(tx *rich.Text, cons text.Constraints, m shaped.Measurer, pm shaped.PlaceholderMeasurer, tsty *text.Style) *shaped.Lines {
	if tx == nil {
		tx = rich.NewPlainText("")
	}
	if tsty == nil {
		tsty = text.NewStyle()
	}
	runs := shaped.Build(tx, segment.Segment(tx), m, pm, tsty)
	return shaped.Wrap(tx, runs, cons, m, tsty)
}
