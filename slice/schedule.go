// Package slice walks a plane schedule over a slicer.IndexedMesh and its
// bvh.AABBTree, extracts per-plane cross-section segments, stitches them
// into closed oriented rings, detects holes, optionally closes small gaps,
// and assembles the result into a slicer.SliceResult.
package slice

import "math"

// PlaneSchedule returns the strictly increasing slicing planes
// z_k = zMin + (k+0.5)*h for k = 0 .. ceil((zMax-zMin)/h)-1. It panics if
// h <= 0; callers validate LayerHeight before calling
// (see slicer.LayerHeight.Validate), so this is never reachable with bad
// input from the package's own Slice entry point.
func PlaneSchedule(zMin, zMax, h float32) []float32 {
	if h <= 0 {
		panic("slice: PlaneSchedule requires h > 0")
	}
	if zMax < zMin {
		return nil
	}
	n := int(math.Ceil(float64((zMax - zMin) / h)))
	if n <= 0 {
		n = 1
	}
	planes := make([]float32, n)
	for k := 0; k < n; k++ {
		planes[k] = zMin + (float32(k)+0.5)*h
	}
	return planes
}
