// Package grapheme counts and slices text by user-perceived characters.
//
// Two extractors are provided. Unicode follows the UAX #29 extended
// grapheme cluster rules and keeps flags, ZWJ emoji sequences and modifier
// sequences whole. Codepoint is a coarser fallback that only groups a
// starter with its combining marks. Known limitations of that mode: it
// splits multi-codepoint emoji, and a run of more than 30 combining marks is
// cut into several units at the stream-safe segment limit of norm.Iter.
package grapheme

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"
)

// Extractor splits text into user-visible units.
type Extractor interface {
	// First returns the prefix of text holding at most n units.
	First(text string, n int) string
	// Count returns the number of units in text.
	Count(text string) int
}

// Extractor names accepted by ByName.
const (
	NameUnicode   = "unicode"
	NameCodepoint = "codepoint"
)

// Default is the extractor used by the package-level helpers.
var Default Extractor = Unicode{}

// First returns the first n graphemes of text using Default.
func First(text string, n int) string {
	return Default.First(text, n)
}

// Count returns the number of graphemes in text using Default.
func Count(text string) int {
	return Default.Count(text)
}

// ByName resolves an extractor from its configuration name.
func ByName(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameUnicode:
		return Unicode{}, nil
	case NameCodepoint:
		return Codepoint{}, nil
	default:
		return nil, fmt.Errorf("unknown grapheme extractor %q", name)
	}
}

// Unicode segments text into extended grapheme clusters.
type Unicode struct{}

// First implements Extractor.
func (Unicode) First(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}
	runes := []rune(text)
	var seg segmenter.Segmenter
	seg.Init(runes)
	iter := seg.GraphemeIterator()
	end, seen := 0, 0
	for seen < n && iter.Next() {
		g := iter.Grapheme()
		end = g.Offset + len(g.Text)
		seen++
	}
	return string(runes[:end])
}

// Count implements Extractor.
func (Unicode) Count(text string) int {
	if text == "" {
		return 0
	}
	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	iter := seg.GraphemeIterator()
	count := 0
	for iter.Next() {
		count++
	}
	return count
}

// Codepoint groups each starter code point with the combining marks that
// follow it, using normalization segment boundaries. Output is NFC. Runs of
// more than 30 non-starters span several segments and so several units.
type Codepoint struct{}

// First implements Extractor.
func (Codepoint) First(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}
	var it norm.Iter
	it.InitString(norm.NFC, text)
	var b strings.Builder
	for seen := 0; seen < n && !it.Done(); seen++ {
		b.Write(it.Next())
	}
	return b.String()
}

// Count implements Extractor.
func (Codepoint) Count(text string) int {
	var it norm.Iter
	it.InitString(norm.NFC, text)
	count := 0
	for !it.Done() {
		it.Next()
		count++
	}
	return count
}
