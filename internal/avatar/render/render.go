// Package render draws an avatar Spec as a standalone SVG document.
package render

import (
	"bytes"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/louisbranch/avatargen/internal/avatar"
	"github.com/louisbranch/avatargen/internal/avatar/grapheme"
)

// ContentType is the media type of rendered documents.
const ContentType = "image/svg+xml; charset=utf-8"

const (
	gradientID = "avatar-gradient"
	fontFamily = "system-ui,-apple-system,Helvetica,Arial,sans-serif"
	textFill   = "#fff"
)

// Renderer draws specs. The zero value measures text with grapheme.Default.
type Renderer struct {
	Extractor grapheme.Extractor
}

// Render returns the SVG document for spec using the default renderer.
func Render(spec avatar.Spec) []byte {
	return Renderer{}.Render(spec)
}

// Render returns the SVG document for spec.
func (r Renderer) Render(spec avatar.Spec) []byte {
	var buf bytes.Buffer
	r.Write(&buf, spec)
	return buf.Bytes()
}

// Write draws spec to w. Output depends only on spec.
//
// Text is written through svgo, which escapes it with encoding/xml, so
// markup in user text cannot break out of the text node.
func (r Renderer) Write(w io.Writer, spec avatar.Spec) {
	size := spec.Size
	canvas := svg.New(w)
	if radius := spec.Shape.BorderRadius(); radius != "" {
		canvas.Start(size, size, `style="border-radius:`+radius+`"`)
	} else {
		canvas.Start(size, size)
	}

	canvas.Def()
	canvas.LinearGradient(gradientID, 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: spec.Color1, Opacity: 1},
		{Offset: 100, Color: spec.Color2, Opacity: 1},
	})
	canvas.DefEnd()
	canvas.Rect(0, 0, size, size, "fill:url(#"+gradientID+")")

	half := formatNumber(float64(size) / 2)
	canvas.Gtransform("translate(" + half + "," + half + ")")
	canvas.Text(0, 0, spec.Text, textStyle(FontSize(size, r.extractor().Count(spec.Text))))
	canvas.Gend()
	canvas.End()
}

func (r Renderer) extractor() grapheme.Extractor {
	if r.Extractor == nil {
		return grapheme.Default
	}
	return r.Extractor
}

// FontSize scales text so that the given number of glyphs fills 90% of the
// avatar width.
func FontSize(size, graphemes int) float64 {
	return float64(size*9) / 10 / float64(max(graphemes, 1))
}

func textStyle(fontSize float64) string {
	return "font-family:" + fontFamily +
		";font-size:" + formatNumber(fontSize) + "px" +
		";fill:" + textFill +
		";text-anchor:middle;dominant-baseline:central"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
