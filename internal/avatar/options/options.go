// Package options turns an avatar request path and query into a Spec.
//
// Parsing never fails. Every malformed input degrades to a default so the
// service can always answer with an image.
package options

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/avatargen/internal/avatar"
	"github.com/louisbranch/avatargen/internal/avatar/grapheme"
	"github.com/louisbranch/avatargen/internal/avatar/punycode"
)

// DefaultPrefix is the path prefix that carries avatar text.
const DefaultPrefix = "/avatar/"

// Query parameter names.
const (
	ParamSize  = "s"
	ParamShape = "shape"
)

// Parser resolves avatar options. The zero value uses DefaultPrefix and
// Unicode grapheme segmentation.
type Parser struct {
	Prefix    string
	Extractor grapheme.Extractor
}

// Result is a parsed request. Colors are left empty for the caller.
type Result struct {
	Spec avatar.Spec
	// Root is true exactly when the request path is "/".
	Root bool
}

// Parse resolves text from path and size/shape from query.
//
// path is expected in escaped form; it is unescaped here so that unescape
// failures can fall back to the literal segment.
func (p Parser) Parse(path string, query url.Values) Result {
	return Result{
		Spec: avatar.Spec{
			Size:  parseSize(query.Get(ParamSize)),
			Text:  p.parseText(path),
			Shape: avatar.ParseShape(query.Get(ParamShape)),
		},
		Root: path == "/",
	}
}

// parseText trims surrounding whitespace from the unescaped text, so
// "/avatar/%20A" renders "A".
func (p Parser) parseText(path string) string {
	prefix := p.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	raw, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return avatar.DefaultText
	}
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	raw = strings.TrimSpace(strings.ToValidUTF8(raw, "\uFFFD"))

	// Truncate after the decode attempt so an encoded label is judged by
	// the characters it stands for.
	text := p.extractor().First(punycode.DecodeLabel(raw), avatar.MaxGraphemes)
	if text == "" {
		return avatar.DefaultText
	}
	return text
}

func (p Parser) extractor() grapheme.Extractor {
	if p.Extractor == nil {
		return grapheme.Default
	}
	return p.Extractor
}

// parseSize reads a base-10 size. Out-of-range integers saturate before
// clamping; anything else non-numeric yields the default.
func parseSize(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return avatar.DefaultSize
	}
	size, err := strconv.Atoi(value)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return avatar.DefaultSize
	}
	return avatar.ClampSize(size)
}
