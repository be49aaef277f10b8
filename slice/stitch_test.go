package slice

import (
	"testing"

	"github.com/arl/goslicer"
)

// squareWithGap returns a 10mm square's edges with its bottom edge split
// at x=5 by a 0.1mm gap (4.95 to 5.05), leaving a single open chain whose
// two free ends are 0.1mm apart after Phase A's exact-endpoint walk.
func squareWithGap() []segment {
	mm := slicer.Point2FromMM
	return []segment{
		{A: mm(4.95, 0), B: mm(0, 0), Kind: slicer.PlaneStandard},
		{A: mm(0, 0), B: mm(0, 10), Kind: slicer.PlaneStandard},
		{A: mm(0, 10), B: mm(10, 10), Kind: slicer.PlaneStandard},
		{A: mm(10, 10), B: mm(10, 0), Kind: slicer.PlaneStandard},
		{A: mm(10, 0), B: mm(5.05, 0), Kind: slicer.PlaneStandard},
	}
}

func TestStitchGapClosingBridgesSmallGap(t *testing.T) {
	segs := squareWithGap()
	res := stitch(segs, slicer.NewDefaultGapClosingConfig())

	if len(res.rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(res.rings))
	}
	if res.discarded != 0 {
		t.Errorf("discarded = %d, want 0", res.discarded)
	}
	if res.gapsClosed != 1 {
		t.Errorf("gapsClosed = %d, want 1", res.gapsClosed)
	}
}

func TestStitchGapClosingDisabledDiscardsChain(t *testing.T) {
	segs := squareWithGap()
	cfg := slicer.NewDefaultGapClosingConfig()
	cfg.Enable = false

	res := stitch(segs, cfg)

	if len(res.rings) != 0 {
		t.Errorf("rings = %d, want 0 with gap closing disabled", len(res.rings))
	}
	if res.discarded != 1 {
		t.Errorf("discarded = %d, want 1", res.discarded)
	}
}

func TestStitchExactJoinClosesSquare(t *testing.T) {
	mm := slicer.Point2FromMM
	segs := []segment{
		{A: mm(0, 0), B: mm(10, 0), Kind: slicer.PlaneStandard},
		{A: mm(10, 0), B: mm(10, 10), Kind: slicer.PlaneStandard},
		{A: mm(10, 10), B: mm(0, 10), Kind: slicer.PlaneStandard},
		{A: mm(0, 10), B: mm(0, 0), Kind: slicer.PlaneStandard},
	}
	res := stitch(segs, slicer.NewDefaultGapClosingConfig())
	if len(res.rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(res.rings))
	}
	if res.gapsFound != 0 {
		t.Errorf("gapsFound = %d, want 0 for an already-closed ring", res.gapsFound)
	}
}
