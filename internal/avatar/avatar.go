// Package avatar defines the normalized description of one avatar image.
//
// Subpackages turn a request into a Spec (options), pick its colors
// (color) and render it (render). A Spec produced by options always
// satisfies the invariants below, so renderers never validate input.
package avatar

// Size bounds in pixels, inclusive.
const (
	MinSize     = 1
	MaxSize     = 1000
	DefaultSize = 60
)

// DefaultText is rendered when a request carries no usable text.
const DefaultText = "A"

// MaxGraphemes caps how many user-visible characters an avatar shows.
const MaxGraphemes = 2

// Shape selects the outline applied to the avatar.
type Shape string

// Supported shapes. Unknown values normalize to ShapeSquare.
const (
	ShapeSquare  Shape = "square"
	ShapeCircle  Shape = "circle"
	ShapeRounded Shape = "rounded"
)

// ParseShape maps a query value to a Shape, defaulting to square.
func ParseShape(value string) Shape {
	switch Shape(value) {
	case ShapeCircle:
		return ShapeCircle
	case ShapeRounded:
		return ShapeRounded
	default:
		return ShapeSquare
	}
}

// BorderRadius returns the CSS border radius for the shape, or "" for none.
func (s Shape) BorderRadius() string {
	switch s {
	case ShapeCircle:
		return "50%"
	case ShapeRounded:
		return "10px"
	default:
		return ""
	}
}

// Spec is a validated avatar description.
//
// Size is within [MinSize, MaxSize], Text is non-empty and holds at most
// MaxGraphemes graphemes, and Text is raw (escaping happens at render time).
type Spec struct {
	Size   int
	Text   string
	Shape  Shape
	Color1 string
	Color2 string
}

// ClampSize forces size into [MinSize, MaxSize].
func ClampSize(size int) int {
	return min(max(size, MinSize), MaxSize)
}
