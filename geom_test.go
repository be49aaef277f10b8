package slicer

import "testing"

func square(minX, minY, maxX, maxY coord) Polygon {
	return NewPolygon([]Point2{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
	})
}

func TestPolygonSignedAreaOrientation(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	if !ccw.IsCCW() {
		t.Errorf("expected CCW square to report IsCCW true, area=%v", ccw.SignedArea())
	}

	cw := ccw.Reversed()
	if cw.IsCCW() {
		t.Errorf("expected reversed square to report IsCCW false")
	}
}

func TestPolygonDropsConsecutiveDuplicates(t *testing.T) {
	p := NewPolygon([]Point2{{0, 0}, {0, 0}, {10, 0}, {10, 10}, {10, 10}, {0, 10}})
	if len(p.Points) != 4 {
		t.Fatalf("len(Points) = %d, want 4", len(p.Points))
	}
}

func TestPolygonValid(t *testing.T) {
	if (Polygon{}).Valid() {
		t.Error("empty polygon reported valid")
	}
	line := NewPolygon([]Point2{{0, 0}, {10, 0}})
	if line.Valid() {
		t.Error("2-point polygon reported valid")
	}
	if !square(0, 0, 10, 10).Valid() {
		t.Error("square reported invalid")
	}
}

func TestExPolygonValidate(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(2, 2, 4, 4).MakeCW()

	ex := ExPolygon{Contour: outer, Holes: []Polygon{hole}}
	if err := ex.Validate(); err != nil {
		t.Errorf("expected valid ExPolygon, got %v", err)
	}
}

func TestExPolygonValidateRejectsCWContour(t *testing.T) {
	outer := square(0, 0, 10, 10).MakeCW()
	ex := ExPolygon{Contour: outer}
	if err := ex.Validate(); err == nil {
		t.Error("expected error for CW contour, got nil")
	} else if !IsKind(err, KindInconsistency) {
		t.Errorf("expected KindInconsistency, got %v", err)
	}
}

func TestExPolygonValidateRejectsHoleOutsideContour(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(20, 20, 24, 24).MakeCW()
	ex := ExPolygon{Contour: outer, Holes: []Polygon{hole}}
	if err := ex.Validate(); err == nil {
		t.Error("expected error for hole outside contour, got nil")
	}
}

func TestBBox2UnionIntersection(t *testing.T) {
	a := BBox2{Min: Point2{0, 0}, Max: Point2{10, 10}}
	b := BBox2{Min: Point2{5, 5}, Max: Point2{15, 15}}

	u := a.Union(b)
	if u.Min != (Point2{0, 0}) || u.Max != (Point2{15, 15}) {
		t.Errorf("union = %+v", u)
	}

	inter, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if inter.Min != (Point2{5, 5}) || inter.Max != (Point2{10, 10}) {
		t.Errorf("intersection = %+v", inter)
	}
}

func TestBBox2NoIntersection(t *testing.T) {
	a := BBox2{Min: Point2{0, 0}, Max: Point2{1, 1}}
	b := BBox2{Min: Point2{5, 5}, Max: Point2{6, 6}}
	if _, ok := a.Intersection(b); ok {
		t.Error("expected no overlap")
	}
}
