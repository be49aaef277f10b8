package slicer

// BBox2 is an axis-aligned box in the XY plane, coord units. Min == Max is
// a legal degenerate point box; Min > Max on any axis is never legal.
type BBox2 struct {
	Min, Max Point2
}

// Contains reports whether p lies within the closed box.
func (b BBox2) Contains(p Point2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Union returns the smallest box containing both b and o.
func (b BBox2) Union(o BBox2) BBox2 {
	return BBox2{
		Min: Point2{X: minCoord(b.Min.X, o.Min.X), Y: minCoord(b.Min.Y, o.Min.Y)},
		Max: Point2{X: maxCoord(b.Max.X, o.Max.X), Y: maxCoord(b.Max.Y, o.Max.Y)},
	}
}

// Intersection returns the overlap of b and o, and false if they do not
// overlap (in which case the returned box is meaningless).
func (b BBox2) Intersection(o BBox2) (BBox2, bool) {
	r := BBox2{
		Min: Point2{X: maxCoord(b.Min.X, o.Min.X), Y: maxCoord(b.Min.Y, o.Min.Y)},
		Max: Point2{X: minCoord(b.Max.X, o.Max.X), Y: minCoord(b.Max.Y, o.Max.Y)},
	}
	return r, r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// BBox3 is an axis-aligned box in mesh space, Vec3f (float32, mm) units.
type BBox3 struct {
	Min, Max Vec3f
}

// Empty3 returns an inverted box suitable as the identity element for
// repeated Union calls (an empty accumulator).
func Empty3() BBox3 {
	const inf = 3.0e38
	return BBox3{Min: Vec3f{inf, inf, inf}, Max: Vec3f{-inf, -inf, -inf}}
}

// Union returns the smallest box containing both b and o.
func (b BBox3) Union(o BBox3) BBox3 {
	min3 := func(a, c Vec3f) Vec3f {
		return Vec3f{fMin(a.X, c.X), fMin(a.Y, c.Y), fMin(a.Z, c.Z)}
	}
	max3 := func(a, c Vec3f) Vec3f {
		return Vec3f{fMax(a.X, c.X), fMax(a.Y, c.Y), fMax(a.Z, c.Z)}
	}
	return BBox3{Min: min3(b.Min, o.Min), Max: max3(b.Max, o.Max)}
}

// UnionPoint extends b to include v.
func (b BBox3) UnionPoint(v Vec3f) BBox3 {
	return b.Union(BBox3{Min: v, Max: v})
}

// SurfaceArea returns the total surface area of the box, used by the AABB
// build's Surface Area Heuristic cost model.
func (b BBox3) SurfaceArea() float32 {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	if dx < 0 || dy < 0 || dz < 0 {
		return 0
	}
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// OverlapsZ reports whether the closed interval [Min.Z, Max.Z] contains z,
// the test plane_intersect uses to decide whether to descend into a child.
func (b BBox3) OverlapsZ(z float32) bool {
	return b.Min.Z <= z && z <= b.Max.Z
}

// Overlaps reports whether b and o overlap on every axis.
func (b BBox3) Overlaps(o BBox3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

func fMin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fMax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Polygon is an ordered sequence of Point2 with implicit closure
// (last->first edge). CCW orientation (positive signed area) denotes an
// outer contour; CW denotes a hole. Construction normalizes away
// consecutive duplicate points; a Polygon with fewer than 3 distinct
// points is invalid (Valid reports it).
type Polygon struct {
	Points []Point2
}

// NewPolygon builds a Polygon from pts, dropping consecutive duplicates
// (including the implicit closing edge).
func NewPolygon(pts []Point2) Polygon {
	if len(pts) == 0 {
		return Polygon{}
	}
	out := make([]Point2, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return Polygon{Points: out}
}

// SignedArea returns the signed area of the polygon in square millimeters
// via the shoelace formula, positive for CCW.
func (p Polygon) SignedArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	// Individual cross terms are widened the same way orient2d widens
	// them, to avoid overflow for large coordinates, then summed in
	// float64.
	var acc float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		term := cross2(a.X, a.Y, b.X, b.Y)
		acc += float64(term.Int64())
	}
	return acc / 2 / (Scale * Scale)
}

// IsCCW reports whether the polygon's signed area is positive.
func (p Polygon) IsCCW() bool { return p.SignedArea() > 0 }

// MakeCCW returns a reversed copy of the polygon if it is currently CW, or
// the polygon unchanged otherwise; the result is CCW unless degenerate
// with zero area. The receiver is not modified.
func (p Polygon) MakeCCW() Polygon {
	if p.IsCCW() || len(p.Points) < 3 {
		return p
	}
	return p.Reversed()
}

// MakeCW is the dual of MakeCCW, used when assigning hole orientation.
func (p Polygon) MakeCW() Polygon {
	if !p.IsCCW() || len(p.Points) < 3 {
		return p
	}
	return p.Reversed()
}

// Reversed returns the polygon with point order reversed (flips
// orientation).
func (p Polygon) Reversed() Polygon {
	out := make([]Point2, len(p.Points))
	for i, pt := range p.Points {
		out[len(p.Points)-1-i] = pt
	}
	return Polygon{Points: out}
}

// BoundingBox returns the polygon's axis-aligned bounding box.
func (p Polygon) BoundingBox() BBox2 {
	if len(p.Points) == 0 {
		return BBox2{}
	}
	b := BBox2{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b.Min.X = minCoord(b.Min.X, pt.X)
		b.Min.Y = minCoord(b.Min.Y, pt.Y)
		b.Max.X = maxCoord(b.Max.X, pt.X)
		b.Max.Y = maxCoord(b.Max.Y, pt.Y)
	}
	return b
}

// Centroid returns the polygon's area-weighted centroid.
func (p Polygon) Centroid() Point2 {
	n := len(p.Points)
	if n == 0 {
		return Point2{}
	}
	if n < 3 {
		return p.Points[0]
	}
	var cx, cy, area float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
		cx += (float64(a.X) + float64(b.X)) * cross
		cy += (float64(a.Y) + float64(b.Y)) * cross
		area += cross
	}
	area /= 2
	if area == 0 {
		return p.Points[0]
	}
	cx /= 6 * area
	cy /= 6 * area
	return Point2{X: coord(cx), Y: coord(cy)}
}

// ContainsPoint delegates to the robust point-in-polygon predicate.
func (p Polygon) ContainsPoint(pt Point2) bool {
	return PointInPolygonRobust(pt, p.Points)
}

// Valid reports whether the polygon satisfies its construction invariant:
// at least 3 distinct points, no two consecutive points equal.
func (p Polygon) Valid() bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if p.Points[i] == p.Points[(i+1)%n] {
			return false
		}
	}
	return true
}

// ExPolygon is one outer CCW Polygon (the contour) plus zero or more CW
// Polygon holes.
type ExPolygon struct {
	Contour Polygon
	Holes   []Polygon
}

// Area returns the contour's area minus the sum of its holes' areas.
func (e ExPolygon) Area() float64 {
	a := e.Contour.SignedArea()
	for _, h := range e.Holes {
		a -= -h.SignedArea() // hole area is |negative signed area|
	}
	return a
}

// Validate checks the ExPolygon invariants: the contour is
// CCW and valid, every hole is CW, every hole lies strictly inside the
// contour, holes are pairwise disjoint (approximated here by a
// non-overlapping-bbox-or-centroid-containment check, since exact polygon
// disjointness is a boolean-mesh-operation the core does not implement),
// and contour area exceeds the sum of hole areas. It returns the first
// violation found as an *Error, or nil.
func (e ExPolygon) Validate() error {
	if !e.Contour.Valid() {
		return Errorf(KindDegenerateGeometry, "ExPolygon contour has fewer than 3 distinct points")
	}
	if !e.Contour.IsCCW() {
		return Errorf(KindInconsistency, "ExPolygon contour is not CCW")
	}
	holeAreaSum := 0.0
	for i, h := range e.Holes {
		if !h.Valid() {
			return Errorf(KindDegenerateGeometry, "ExPolygon hole %d has fewer than 3 distinct points", i)
		}
		if h.IsCCW() {
			return Errorf(KindInconsistency, "ExPolygon hole %d is not CW", i)
		}
		if len(h.Points) > 0 && !e.Contour.ContainsPoint(h.Centroid()) {
			return Errorf(KindInconsistency, "ExPolygon hole %d does not lie inside its contour", i)
		}
		holeAreaSum += -h.SignedArea()
	}
	for i := range e.Holes {
		for j := i + 1; j < len(e.Holes); j++ {
			hi, hj := e.Holes[i], e.Holes[j]
			if _, ok := hi.BoundingBox().Intersection(hj.BoundingBox()); !ok {
				continue
			}
			if hi.ContainsPoint(hj.Centroid()) || hj.ContainsPoint(hi.Centroid()) {
				return Errorf(KindInconsistency, "ExPolygon holes %d and %d overlap", i, j)
			}
		}
	}
	if e.Contour.SignedArea() <= holeAreaSum {
		return Errorf(KindInconsistency, "ExPolygon contour area does not exceed sum of hole areas")
	}
	return nil
}
