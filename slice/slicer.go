package slice

import (
	"time"

	"github.com/arl/goslicer"
	"github.com/arl/goslicer/bvh"
)

// Layer is one slicing plane's result: its height, the ExPolygons found
// there, and how many separate top-level islands it contains.
type Layer struct {
	ZHeight     float32
	Polygons    []slicer.ExPolygon
	IslandCount uint32
}

// Statistics are the per-run counters a caller needs to judge a slice's
// quality: triangles processed, intersections found, polygon completion rate (closed rings
// over attempted rings), gaps found/closed, and wall-clock processing
// time.
type Statistics struct {
	TrianglesProcessed    int
	IntersectionsFound    int
	PolygonCompletionRate float64
	GapsFound             int
	GapsClosed            int
	ProcessingTimeMS      float64
}

// SliceResult is the slicer's output: an ascending-z ordered stack of
// Layers plus run statistics.
type SliceResult struct {
	Layers     []Layer
	Statistics Statistics
}

// Slice walks mesh's plane schedule (derived from its bounding box and h),
// collects candidate triangles from tree at each plane, stitches
// cross-section segments into closed rings, assembles ExPolygons, and
// optionally closes small gaps per cfg. ctx may be nil; its
// TimerPlaneQuery/TimerStitch/TimerOrient timers are accumulated across
// every plane (TimerPlaneQuery covers both the tree query and segment
// extraction; TimerSegmentExtract is not used), and Cancelled() is checked once per
// layer, a coarse checkpoint granularity that keeps cancellation cheap.
func Slice(mesh *slicer.IndexedMesh, tree *bvh.AABBTree, h slicer.LayerHeight, cfg slicer.GapClosingConfig, ctx *slicer.Context) (*SliceResult, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if len(mesh.Triangles) == 0 {
		return nil, slicer.Errorf(slicer.KindInvalidInput, "cannot slice a mesh with zero triangles")
	}

	ctx.StartTimer(slicer.TimerTotal)
	defer ctx.StopTimer(slicer.TimerTotal)

	box := mesh.BoundingBox()
	planes := PlaneSchedule(box.Min.Z, box.Max.Z, float32(h))

	result := &SliceResult{}
	start := time.Now()

	var attemptedRings, closedRings int

	for _, z := range planes {
		if ctx.Cancelled() {
			return nil, slicer.Errorf(slicer.KindCancelled, "slice cancelled at z=%v", z)
		}

		ctx.StartTimer(slicer.TimerPlaneQuery)
		segs, intersections, candidateCount := extractSegments(mesh, tree, z)
		ctx.StopTimer(slicer.TimerPlaneQuery)
		result.Statistics.IntersectionsFound += intersections
		result.Statistics.TrianglesProcessed += candidateCount

		ctx.StartTimer(slicer.TimerStitch)
		sr := stitch(segs, cfg)
		ctx.StopTimer(slicer.TimerStitch)

		result.Statistics.GapsFound += sr.gapsFound
		result.Statistics.GapsClosed += sr.gapsClosed
		attemptedRings += len(sr.rings) + sr.discarded
		closedRings += len(sr.rings)

		ctx.StartTimer(slicer.TimerOrient)
		rings := buildRings(sr.rings)
		exPolys := assembleExPolygons(rings)
		ctx.StopTimer(slicer.TimerOrient)

		if len(exPolys) == 0 {
			result.Layers = append(result.Layers, Layer{ZHeight: z})
			continue
		}

		result.Layers = append(result.Layers, Layer{
			ZHeight:     z,
			Polygons:    exPolys,
			IslandCount: uint32(len(exPolys)),
		})
	}

	if attemptedRings > 0 {
		result.Statistics.PolygonCompletionRate = float64(closedRings) / float64(attemptedRings)
	} else {
		result.Statistics.PolygonCompletionRate = 1
	}
	result.Statistics.ProcessingTimeMS = float64(time.Since(start)) / float64(time.Millisecond)

	return result, nil
}
