package slicer

import "math"

// coord is a scaled, fixed-point millimeter quantity. All internal 2D
// geometry uses coord; only boundary conversions (mesh vertices, CLI
// input/output) use floating-point millimeters.
type coord int64

// mmToCoord converts a millimeter value to its fixed-point coord
// representation, rounding to the nearest integer coord.
func mmToCoord(mm float64) coord {
	return coord(math.Round(mm * Scale))
}

// coordToMM converts a coord back to millimeters.
func coordToMM(c coord) float64 {
	return float64(c) / Scale
}

// Point2FromMM builds a Point2 from millimeter coordinates, the one
// boundary conversion sub-packages need to turn mesh-space crossings or
// CLI input into the coord domain.
func Point2FromMM(xmm, ymm float64) Point2 {
	return Point2{X: mmToCoord(xmm), Y: mmToCoord(ymm)}
}

// MM returns p's coordinates converted back to millimeters, the boundary
// conversion the slice package uses when assembling a SliceResult for
// external consumption.
func (p Point2) MM() (x, y float64) {
	return coordToMM(p.X), coordToMM(p.Y)
}

func absCoord(c coord) coord {
	if c < 0 {
		return -c
	}
	return c
}

func minCoord(a, b coord) coord {
	if a < b {
		return a
	}
	return b
}

func maxCoord(a, b coord) coord {
	if a > b {
		return a
	}
	return b
}
