package slicer

import (
	"math"

	"github.com/arl/math32"
)

// Epsilon32 is the smallest representable float32 gap above 1, used as the
// base tolerance for ApproxEqual.
var Epsilon32 = math.Nextafter32(1, 2) - 1

// ApproxEqual reports whether a and b are equal to within a relative
// tolerance scaled by their magnitude, in the style of Catch2's Approx
// matcher.
func ApproxEqual(a, b float32) bool {
	eps := Epsilon32 * 100
	return math32.Abs(a-b) < eps*(1.0+math32.Max(math32.Abs(a), math32.Abs(b)))
}

// ApproxEqualTol reports whether a and b differ by no more than tol.
func ApproxEqualTol(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
