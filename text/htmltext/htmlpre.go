// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"bytes"
	"encoding/xml"
	"html"
	"strings"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/text/rich"
)

// HTMLPreToRich translates preformatted HTML-styled text into a [rich.Text].
// This uses a custom decoder that preserves all whitespace characters,
// including LF \n etc, and decodes the same tags as [HTMLToRich].
// The <pre> tags themselves are ignored. A '<' that is not followed
// by a letter or '/' is kept as text.
func HTMLPreToRich(str []byte, sizes map[string]rich.PlaceholderSize) (*rich.Text, error) {
	cv := newConverter(sizes)
	sz := len(str)
	bidx := 0
	for bidx < sz {
		if str[bidx] == '<' {
			eidx := -1
			if bidx+1 < sz && isTagStart(str[bidx+1]) {
				eidx = bytes.IndexByte(str[bidx+1:], '>')
			}
			if eidx <= 0 {
				cv.append("<")
				bidx++
				continue
			}
			cv.tag(string(str[bidx+1 : bidx+1+eidx]))
			bidx += eidx + 2
			continue
		}
		eidx := bytes.IndexByte(str[bidx+1:], '<') + 1
		if eidx == 0 {
			eidx = sz - bidx
		}
		cv.chars(html.UnescapeString(string(str[bidx : bidx+eidx])))
		bidx += eidx
	}
	return cv.text(), errors.Join(cv.errs...)
}

func isTagStart(c byte) bool {
	return c == '/' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tag handles the contents of a tag between < and >.
func (cv *converter) tag(ftag string) {
	if etag, ok := strings.CutPrefix(ftag, "/"); ok {
		if strings.EqualFold(strings.TrimSpace(etag), "pre") {
			return
		}
		cv.end(strings.TrimSpace(etag))
		return
	}
	se, err := parseStartTag(ftag)
	if err != nil {
		cv.errorf("tag <%s>: %v", ftag, err)
		return
	}
	if strings.EqualFold(se.Name.Local, "pre") {
		return
	}
	cv.start(se)
	if strings.HasSuffix(ftag, "/") {
		cv.end(se.Name.Local)
	}
}

// parseStartTag parses the name and attributes of a start tag,
// using the same lenient settings as [HTMLToRich].
func parseStartTag(ftag string) (xml.StartElement, error) {
	decoder := xml.NewDecoder(strings.NewReader("<" + ftag + ">"))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	for {
		t, err := decoder.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := t.(xml.StartElement); ok {
			return se, nil
		}
	}
}
