// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/text/rich"
	"golang.org/x/net/html/charset"
)

// HTMLToRich translates HTML-formatted text into a [rich.Text].
// This uses the golang XML decoder system, which collapses all whitespace
// and therefore does not capture any preformatted text. See [HTMLPreToRich].
// Standard inline formatting tags, <a> links, <q> quotes, <p> and <br>
// line breaks are decoded, along with the style attribute of any element.
// Inline <img> and <object> elements become placeholders, sized from
// their width and height attributes or else from the given sizes.
// Problems with individual tags are returned as a joined error
// along with the text.
func HTMLToRich(str []byte, sizes map[string]rich.PlaceholderSize) (*rich.Text, error) {
	cv := newConverter(sizes)
	if len(str) == 0 {
		return cv.text(), nil
	}
	spcstr := bytes.Join(bytes.Fields(str), []byte(" "))

	reader := bytes.NewReader(spcstr)
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	for {
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF && !unclosedAtEOF(err, reader) {
				cv.errs = append(cv.errs, fmt.Errorf("htmltext: %w", err))
			}
			break
		}
		switch se := t.(type) {
		case xml.StartElement:
			cv.start(se)
		case xml.EndElement:
			cv.end(se.Name.Local)
		case xml.CharData:
			sstr := string(se)
			if cv.atLineStart() {
				sstr = strings.TrimLeftFunc(sstr, isSpace)
			}
			cv.chars(sstr)
		}
	}
	return cv.text(), errors.Join(cv.errs...)
}

// unclosedAtEOF returns true if the error only reports elements that
// are still open at the end of the input, which HTML allows.
func unclosedAtEOF(err error, r *bytes.Reader) bool {
	var se *xml.SyntaxError
	return errors.As(err, &se) && se.Msg == "unexpected EOF" && r.Len() == 0
}
