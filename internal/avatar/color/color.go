// Package color picks random hex colors for avatar gradients.
package color

import "strings"

const hexDigits = "0123456789abcdef"

// Source is the random stream colors are drawn from. *math/rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// Random returns a "#rrggbb" color with each digit drawn uniformly from src.
func Random(src Source) string {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for range 6 {
		b.WriteByte(hexDigits[src.Intn(len(hexDigits))])
	}
	return b.String()
}

// Gradient returns two independently drawn colors. They may be equal.
func Gradient(src Source) (string, string) {
	first := Random(src)
	return first, Random(src)
}
