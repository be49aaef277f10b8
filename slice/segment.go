package slice

import (
	"sort"

	"github.com/arl/goslicer"
	"github.com/arl/goslicer/bvh"
)

// segment is one cross-section edge extracted from a single triangle, an
// endpoint pair tagged with the PlaneKind that produced it.
type segment struct {
	A, B slicer.Point2
	Kind slicer.PlaneKind
}

// extractSegments walks every candidate triangle returned by the tree's
// plane query, classifies it against z via TrianglePlaneIntersection, and
// returns the deduplicated segment soup, the count of raw intersection
// segments found, and the number of candidate triangles examined.
func extractSegments(mesh *slicer.IndexedMesh, tree *bvh.AABBTree, z float32) (segs []segment, intersections, candidateCount int) {
	candidates := tree.PlaneIntersect(z)
	candidateCount = len(candidates)

	for _, triIdx := range candidates {
		a, b, c := mesh.TriangleVerts(int(triIdx))
		if slicer.ApproxEqualTol(slicer.TriangleArea2(a, b, c), 0, slicer.Epsilon32) {
			continue
		}
		pi := slicer.TrianglePlaneIntersection(a, b, c, z)
		for _, s := range pi.Segments {
			segs = append(segs, segment{A: s[0], B: s[1], Kind: pi.Kind})
			intersections++
		}
	}

	return dedupSegments(segs), intersections, candidateCount
}

func sortEndpoints(a, b slicer.Point2) (slicer.Point2, slicer.Point2) {
	if a.Less(b) {
		return a, b
	}
	return b, a
}

// dedupSegments discards duplicate on-plane segments, detected by
// comparing lexicographically-sorted endpoint pairs (two triangles
// sharing an on-plane edge each emit it once).
func dedupSegments(in []segment) []segment {
	type key struct {
		ax, ay, bx, by int64
	}
	seen := make(map[key]bool, len(in))
	out := make([]segment, 0, len(in))

	for _, s := range in {
		lo, hi := sortEndpoints(s.A, s.B)
		k := key{int64(lo.X), int64(lo.Y), int64(hi.X), int64(hi.Y)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i], out[j]
		loI, hiI := sortEndpoints(ai.A, ai.B)
		loJ, hiJ := sortEndpoints(aj.A, aj.B)
		if loI != loJ {
			return loI.Less(loJ)
		}
		return hiI.Less(hiJ)
	})

	return out
}
