// Package punycode decodes internationalized labels written in the
// bootstring "xn--" form (RFC 3492) back to Unicode text.
//
// Only decoding is provided. The avatar path accepts encoded labels from
// clients; nothing in the service ever needs to produce them.
package punycode

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

// Prefix marks a label as bootstring encoded. It is matched case-insensitively.
const Prefix = "xn--"

const (
	base        = 36
	tMin        = 1
	tMax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 128
	delimiter   = '-'
)

var (
	// ErrNonASCII reports a byte >= 0x80 before the last delimiter.
	ErrNonASCII = errors.New("non-ASCII byte in basic code points")
	// ErrInvalidDigit reports a byte outside [a-zA-Z0-9] in the encoded suffix.
	ErrInvalidDigit = errors.New("invalid base-36 digit")
	// ErrTruncated reports input ending in the middle of a variable-length integer.
	ErrTruncated = errors.New("truncated variable-length integer")
	// ErrOverflow reports a delta or code point that does not fit in 32 bits.
	ErrOverflow = errors.New("integer overflow")
	// ErrInvalidCodePoint reports a decoded surrogate or value beyond U+10FFFF.
	ErrInvalidCodePoint = errors.New("decoded value is not a valid code point")
)

// DecodeError describes why a label could not be decoded.
type DecodeError struct {
	Label string // label as given to Decode, without the prefix
	Pos   int    // byte offset where decoding stopped
	Err   error  // one of the Err* sentinels
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("punycode: decode %q at byte %d: %v", e.Label, e.Pos, e.Err)
}

// Unwrap returns the sentinel cause so callers can use errors.Is.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsEncoded reports whether s starts with the xn-- prefix, ignoring case.
func IsEncoded(s string) bool {
	return len(s) >= len(Prefix) && strings.EqualFold(s[:len(Prefix)], Prefix)
}

// DecodeLabel strips the xn-- prefix from s and decodes the rest.
//
// Labels without the prefix, and labels that fail to decode, are returned
// unchanged so callers can render the literal text instead.
func DecodeLabel(s string) string {
	if !IsEncoded(s) {
		return s
	}
	decoded, err := Decode(s[len(Prefix):])
	if err != nil {
		return s
	}
	return decoded
}

// Decode converts a bootstring label (without the xn-- prefix) to Unicode.
//
// Everything before the last '-' is copied verbatim and must be ASCII. The
// remainder is read as a run of generalized variable-length integers, each
// one inserting a single code point into the output. A label with nothing
// after the delimiter decodes to its basic prefix.
func Decode(label string) (string, error) {
	output := make([]rune, 0, len(label))
	pos := 0
	if b := strings.LastIndexByte(label, delimiter); b >= 0 {
		for j := 0; j < b; j++ {
			if label[j] >= utf8.RuneSelf {
				return "", &DecodeError{Label: label, Pos: j, Err: ErrNonASCII}
			}
			output = append(output, rune(label[j]))
		}
		pos = b + 1
	}

	n, i, bias := initialN, 0, initialBias
	for pos < len(label) {
		oldi, w := i, 1
		for k := base; ; k += base {
			if pos >= len(label) {
				return "", &DecodeError{Label: label, Pos: pos, Err: ErrTruncated}
			}
			digit, ok := decodeDigit(label[pos])
			if !ok {
				return "", &DecodeError{Label: label, Pos: pos, Err: ErrInvalidDigit}
			}
			pos++
			if digit > (math.MaxInt32-i)/w {
				return "", &DecodeError{Label: label, Pos: pos - 1, Err: ErrOverflow}
			}
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > math.MaxInt32/(base-t) {
				return "", &DecodeError{Label: label, Pos: pos - 1, Err: ErrOverflow}
			}
			w *= base - t
		}

		length := len(output) + 1
		bias = adapt(i-oldi, length, oldi == 0)
		if i/length > math.MaxInt32-n {
			return "", &DecodeError{Label: label, Pos: pos - 1, Err: ErrOverflow}
		}
		n += i / length
		i %= length
		if !utf8.ValidRune(rune(n)) {
			return "", &DecodeError{Label: label, Pos: pos - 1, Err: ErrInvalidCodePoint}
		}
		output = slices.Insert(output, i, rune(n))
		i++
	}
	return string(output), nil
}

func decodeDigit(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= '0' && c <= '9':
		return int(c-'0') + 26, true
	}
	return 0, false
}

func threshold(k, bias int) int {
	return min(max(k-bias, tMin), tMax)
}

// adapt is the bias adaptation function from RFC 3492 section 6.1.
func adapt(delta, numPoints int, first bool) int {
	if first {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((base-tMin)*tMax)/2 {
		delta /= base - tMin
		k += base
	}
	return k + (base-tMin+1)*delta/(delta+skew)
}
