package slice

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/arl/goslicer"
)

// ring is a closed polyline with its orientation already known.
type ring struct {
	poly slicer.Polygon
	ccw  bool
}

// buildRings converts raw stitched point loops into slicer.Polygon values,
// discarding any shorter than 3 distinct points after normalization, and
// classifying each by orientation.
func buildRings(loops [][]slicer.Point2) []ring {
	var out []ring
	for _, pts := range loops {
		poly := slicer.NewPolygon(pts)
		if !poly.Valid() {
			continue
		}
		assert.True(len(poly.Points) >= 3, "accepted ring has fewer than 3 distinct points: %v", poly.Points)
		out = append(out, ring{poly: poly, ccw: poly.IsCCW()})
	}
	return out
}

// assembleExPolygons builds a containment tree over rings by point-in-
// polygon tests (each ring's centroid against every larger ring; the
// smallest enclosing ring is the parent), then assigns each hole to its
// immediate enclosing contour: rings nested at even depth become contours
// of inner islands, odd-depth rings are holes of their enclosing contour.
// Holes within each ExPolygon, and the ExPolygons themselves, are
// returned sorted by centroid.
func assembleExPolygons(rings []ring) []slicer.ExPolygon {
	n := len(rings)
	if n == 0 {
		return nil
	}

	depth := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	centroids := make([]slicer.Point2, n)
	absArea := make([]float64, n)
	for i, r := range rings {
		centroids[i] = r.poly.Centroid()
		absArea[i] = r.poly.SignedArea()
		if absArea[i] < 0 {
			absArea[i] = -absArea[i]
		}
	}

	for i := 0; i < n; i++ {
		best := -1
		bestArea := 0.0
		for j := 0; j < n; j++ {
			// Only a strictly larger ring can enclose ring i, which keeps
			// the parent links acyclic even when i's centroid also falls
			// inside a smaller ring.
			if i == j || absArea[j] <= absArea[i] {
				continue
			}
			if !rings[j].poly.ContainsPoint(centroids[i]) {
				continue
			}
			if best == -1 || absArea[j] < bestArea {
				best = j
				bestArea = absArea[j]
			}
		}
		parent[i] = best
	}

	for i := 0; i < n; i++ {
		d := 0
		p := parent[i]
		for p != -1 {
			d++
			p = parent[p]
		}
		depth[i] = d
	}

	var exPolys []slicer.ExPolygon
	// Top-level contours are even-depth rings whose parent is either
	// absent or itself a hole boundary one level up; build by scanning
	// every even-depth ring, normalizing its orientation to CCW, and
	// attaching every odd-depth ring whose nearest enclosing even-depth
	// ring is it.
	for i := 0; i < n; i++ {
		if depth[i]%2 != 0 {
			continue
		}
		contour := rings[i].poly.MakeCCW()
		ex := slicer.ExPolygon{Contour: contour}
		for j := 0; j < n; j++ {
			if depth[j]%2 == 0 {
				continue
			}
			if nearestEvenAncestor(j, parent, depth) == i {
				ex.Holes = append(ex.Holes, rings[j].poly.MakeCW())
			}
		}
		sort.Slice(ex.Holes, func(a, b int) bool {
			return ex.Holes[a].Centroid().Less(ex.Holes[b].Centroid())
		})
		exPolys = append(exPolys, ex)
	}

	sort.Slice(exPolys, func(a, b int) bool {
		return exPolys[a].Contour.Centroid().Less(exPolys[b].Contour.Centroid())
	})

	return exPolys
}

// nearestEvenAncestor walks up from ring i's parent chain to the nearest
// ring at even depth (its enclosing top-level or inner-island contour).
func nearestEvenAncestor(i int, parent, depth []int) int {
	p := parent[i]
	for p != -1 && depth[p]%2 != 0 {
		p = parent[p]
	}
	return p
}
