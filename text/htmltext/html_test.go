// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"testing"

	"cogentcore.org/textlayout/text/rich"
	"cogentcore.org/textlayout/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	src := `The <i>lazy</i> fox typed in some <span style="font-size:15px;font-weight:bold">familiar</span> text`
	tx, err := HTMLToRich([]byte(src), nil)
	require.NoError(t, err)
	assert.Equal(t, "The lazy fox typed in some familiar text", tx.String())

	require.Len(t, tx.Styles, 2)
	assert.Equal(t, textpos.R(4, 8), tx.Styles[0].Range)
	assert.Equal(t, rich.Italic, tx.Styles[0].Style.Slant)
	assert.Equal(t, textpos.R(27, 35), tx.Styles[1].Range)
	assert.Equal(t, float32(15), tx.Styles[1].Style.Size)
	assert.Equal(t, rich.Bold, tx.Styles[1].Style.Weight)
	assert.False(t, tx.Styles[1].Style.Set.Has(rich.PropSlant))
}

func TestStyleAttr(t *testing.T) {
	tx, err := HTMLToRich([]byte(`<span style="color:red">a</span><span style="font-weight: bold ">b</span>`), nil)
	require.NoError(t, err)
	require.Len(t, tx.Styles, 2)
	assert.Equal(t, uint8(0xff), tx.Styles[0].Style.Color.R)
	assert.Equal(t, rich.Bold, tx.Styles[1].Style.Weight)
}

func TestUnclosed(t *testing.T) {
	tx, err := HTMLToRich([]byte(`<p>open <b>bold`), nil)
	require.NoError(t, err)
	assert.Equal(t, "open bold", tx.String())
	require.Len(t, tx.Styles, 1)
	assert.Equal(t, "bold", string(tx.Slice(tx.Styles[0].Range)))

	tx, err = HTMLToRich([]byte(`an <img src="x.png">`), nil)
	require.NoError(t, err)
	assert.Equal(t, "an \uFFFC", tx.String())
}

func TestLink(t *testing.T) {
	src := `The <a href="https://example.com">link</a> and`
	tx, err := HTMLToRich([]byte(src), nil)
	require.NoError(t, err)
	assert.Equal(t, "The link and", tx.String())

	require.Len(t, tx.Links, 1)
	assert.Equal(t, rich.Link{ID: "https://example.com", URL: "https://example.com"}, tx.Links[0].Link)
	assert.Equal(t, textpos.R(4, 8), tx.Links[0].Range)
	require.Len(t, tx.Styles, 1)
	assert.Equal(t, LinkColor, tx.Styles[0].Style.Color)
	assert.Equal(t, rich.Underline, tx.Styles[0].Style.Decoration)
}

func TestDemo(t *testing.T) {
	src := `A <b>demonstration</b> of the <i>various</i> features of the
	<a id="core" href="https://cogentcore.org/core">Cogent Core</a> text <u>engine</u>`
	tx, err := HTMLToRich([]byte(src), nil)
	require.NoError(t, err)
	assert.Equal(t, "A demonstration of the various features of the Cogent Core text engine", tx.String())
	lks := tx.GetLinks()
	require.Len(t, lks, 1)
	assert.Equal(t, "Cogent Core", lks[0].Label)
	assert.Equal(t, "core", lks[0].ID)
	require.Len(t, tx.Styles, 4)
	assert.Equal(t, rich.Underline, tx.Styles[3].Style.Decoration)
	assert.Equal(t, "engine", string(tx.Slice(tx.Styles[3].Range)))
}

func TestParagraphs(t *testing.T) {
	src := `<p>one two</p> <p align="center">three<br>four</p>`
	tx, err := HTMLToRich([]byte(src), nil)
	require.NoError(t, err)
	assert.Equal(t, "one two\nthree\nfour\n", tx.String())
	require.Len(t, tx.Paragraphs, 1)
	assert.Equal(t, textpos.R(8, 19), tx.Paragraphs[0].Range)
	assert.Equal(t, rich.Center, tx.Paragraphs[0].Paragraph.Align)
}

func TestQuote(t *testing.T) {
	tx, err := HTMLToRich([]byte(`say <q>hi</q>&amp; go`), nil)
	require.NoError(t, err)
	assert.Equal(t, "say \u201chi\u201d& go", tx.String())
}

func TestPlaceholders(t *testing.T) {
	sizes := map[string]rich.PlaceholderSize{"x.png": {Width: 8, Height: 8}}
	src := `an <img id="icon" width="16" height="12px" align="baseline"> icon <img src="x.png">`
	tx, err := HTMLToRich([]byte(src), sizes)
	require.NoError(t, err)
	assert.Equal(t, "an \uFFFC icon \uFFFC", tx.String())
	require.Len(t, tx.Placeholders, 2)
	assert.Equal(t, rich.Placeholder{ID: "icon", Width: 16, Height: 12, VerticalAlign: rich.AlignBaseline}, tx.Placeholders[0].Placeholder)
	assert.Equal(t, float32(8), tx.Placeholders[1].Placeholder.Width)
	assert.Equal(t, 3, tx.Placeholders[0].Range.Start)
}

func TestHTMLErrors(t *testing.T) {
	tx, err := HTMLToRich([]byte(`<blink>x</blink>`), nil)
	assert.ErrorContains(t, err, `"blink" tag not recognized`)
	assert.Equal(t, "x", tx.String())

	tx, err = HTMLToRich([]byte(`<span style="color: nope">x</span>`), nil)
	assert.ErrorContains(t, err, "unknown color name")
	assert.Empty(t, tx.Styles)

	tx, err = HTMLToRich(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, tx.Len())
}

func TestCSS(t *testing.T) {
	src := `<span style="font-weight: 600; font-style: italic; font-family: 'Go Mono', monospace; text-decoration: underline line-through; letter-spacing: 0.1em; background-color: #ff0">x</span>`
	tx, err := HTMLToRich([]byte(src), nil)
	require.NoError(t, err)
	require.Len(t, tx.Styles, 1)
	sty := tx.Styles[0].Style
	assert.Equal(t, rich.SemiBold, sty.Weight)
	assert.Equal(t, rich.Italic, sty.Slant)
	assert.Equal(t, "Go Mono", sty.Family)
	assert.Equal(t, rich.Underline|rich.LineThrough, sty.Decoration)
	assert.InDelta(t, 0.1, sty.LetterSpacing, 1e-6)
	assert.Equal(t, uint8(0xff), sty.Background.G)
	assert.False(t, sty.Set.Has(rich.PropFill))
}

func TestPre(t *testing.T) {
	src := "<pre>  a <b>bold</b>\n  b &lt; c < d<br/>e</pre>"
	tx, err := HTMLPreToRich([]byte(src), nil)
	require.NoError(t, err)
	assert.Equal(t, "  a bold\n  b < c < d\ne", tx.String())
	require.Len(t, tx.Styles, 1)
	assert.Equal(t, textpos.R(4, 8), tx.Styles[0].Range)
	assert.Equal(t, rich.Bold, tx.Styles[0].Style.Weight)

	tx, err = HTMLPreToRich([]byte(`<a href="u" id="k">go</a> <img id="i" width=4 height=4/>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "go \uFFFC", tx.String())
	require.Len(t, tx.Links, 1)
	assert.Equal(t, rich.Link{ID: "k", URL: "u"}, tx.Links[0].Link)
	require.Len(t, tx.Placeholders, 1)
	assert.Equal(t, float32(4), tx.Placeholders[0].Placeholder.Height)
}

func TestPreErrors(t *testing.T) {
	tx, err := HTMLPreToRich([]byte("<b>x</i>y"), nil)
	assert.ErrorContains(t, err, `end tag "i" does not match current tag "b"`)
	assert.Equal(t, "xy", tx.String())
}

func TestStyleSheet(t *testing.T) {
	src := `<style>
	.note { color: #00f; font-style: italic }
	em.loud, strong { font-weight: 800 }
	p { text-align: end }
	</style><p>a <span class="note">note</span> <em class="loud">loud</em></p>`
	tx, err := HTMLToRich([]byte(src), nil)
	require.NoError(t, err)
	assert.Equal(t, "a note loud\n", tx.String())

	require.Len(t, tx.Paragraphs, 1)
	assert.Equal(t, rich.End, tx.Paragraphs[0].Paragraph.Align)
	require.Len(t, tx.Styles, 2)
	note := tx.Styles[0]
	assert.Equal(t, "note", string(tx.Slice(note.Range)))
	assert.Equal(t, uint8(0xff), note.Style.Color.B)
	assert.Equal(t, rich.Italic, note.Style.Slant)
	loud := tx.Styles[1].Style
	assert.Equal(t, rich.ExtraBold, loud.Weight)
	assert.Equal(t, rich.Italic, loud.Slant)
}
