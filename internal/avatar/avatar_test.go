package avatar

import "testing"

func TestClampSize(t *testing.T) {
	t.Parallel()

	tests := map[int]int{
		-5:   1,
		0:    1,
		1:    1,
		60:   60,
		1000: 1000,
		1001: 1000,
		9999: 1000,
	}
	for input, want := range tests {
		if got := ClampSize(input); got != want {
			t.Fatalf("ClampSize(%d) = %d, want %d", input, got, want)
		}
	}
}

func TestParseShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value      string
		want       Shape
		wantRadius string
	}{
		{value: "circle", want: ShapeCircle, wantRadius: "50%"},
		{value: "rounded", want: ShapeRounded, wantRadius: "10px"},
		{value: "square", want: ShapeSquare},
		{value: "", want: ShapeSquare},
		{value: "hexagon", want: ShapeSquare},
		{value: "Circle", want: ShapeSquare},
	}
	for _, tc := range tests {
		got := ParseShape(tc.value)
		if got != tc.want {
			t.Fatalf("ParseShape(%q) = %q, want %q", tc.value, got, tc.want)
		}
		if radius := got.BorderRadius(); radius != tc.wantRadius {
			t.Fatalf("%q.BorderRadius() = %q, want %q", got, radius, tc.wantRadius)
		}
	}
}
