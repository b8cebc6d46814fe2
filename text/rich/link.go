// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import "cogentcore.org/textlayout/text/textpos"

// Link is the annotation for a range of text that can be
// interacted with, such as a hyperlink.
type Link struct {
	// ID is the opaque identifier reported back on hit-testing.
	ID string

	// URL is the optional full URL for the link.
	URL string
}

// LinkRec represents a link within the text, with its label.
type LinkRec struct {
	// Label is the text label for the link.
	Label string

	// URL is the full URL for the link.
	URL string

	// ID is the link identifier.
	ID string

	// Range defines the starting and ending positions of the link,
	// in terms of source rune indexes.
	Range textpos.Range
}

// GetLinks gets all the links from the text, in declaration order.
func (tx *Text) GetLinks() []LinkRec {
	lks := make([]LinkRec, 0, len(tx.Links))
	for _, lr := range tx.Links {
		rg := lr.Range.Clamp(len(tx.Source))
		lks = append(lks, LinkRec{
			Label: string(tx.Source[rg.Start:rg.End]),
			URL:   lr.Link.URL,
			ID:    lr.Link.ID,
			Range: rg,
		})
	}
	return lks
}
