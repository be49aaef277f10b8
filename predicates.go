package slicer

import (
	"math"
	"math/big"
)

// Point2 is an ordered pair of coord, a point in the XY plane at one
// layer's elevation.
type Point2 struct {
	X, Y coord
}

// Less orders points lexicographically by X then Y, the tie-break used by
// the on-plane segment deduplication pass (slice package) to sort segment
// endpoints before comparing them.
func (p Point2) Less(o Point2) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// widen promotes a coord product computation into *big.Int so that
// Orient2D and SegmentIntersect never overflow int64.
func widen(c coord) *big.Int { return big.NewInt(int64(c)) }

func cross2(ax, ay, bx, by coord) *big.Int {
	l := new(big.Int).Mul(widen(ax), widen(by))
	r := new(big.Int).Mul(widen(ay), widen(bx))
	return l.Sub(l, r)
}

// Orient2D returns the sign of (b-a) x (c-a): +1 if a,b,c turn
// counter-clockwise, -1 if clockwise, 0 if exactly collinear. The cross
// product is computed in a widened integer so no (coord*coord) product
// can overflow int64.
func Orient2D(a, b, c Point2) int {
	d := cross2(b.X-a.X, b.Y-a.Y, c.X-a.X, c.Y-a.Y)
	return d.Sign()
}

// IntersectKind tags the configuration returned by SegmentIntersect, a
// fixed enumeration rather than an interface hierarchy.
type IntersectKind int

const (
	// IntersectNone indicates the segments do not meet.
	IntersectNone IntersectKind = iota
	// IntersectPoint indicates the segments meet at exactly one point.
	IntersectPoint
	// IntersectSegment indicates collinear overlap spanning more than one
	// point.
	IntersectSegment
	// IntersectCollinear indicates the segments are collinear but do not
	// overlap (their supporting lines coincide, their spans do not).
	IntersectCollinear
)

// Intersection is the result of segment_intersect: a kind tag plus the
// endpoints of the resulting point or overlap interval. P is valid for
// IntersectPoint and as the first endpoint of IntersectSegment; Q is the
// second endpoint of IntersectSegment.
type Intersection struct {
	Kind IntersectKind
	P, Q Point2
}

func onSegment(p, a, b Point2) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	return minCoord(a.X, b.X) <= p.X && p.X <= maxCoord(a.X, b.X) &&
		minCoord(a.Y, b.Y) <= p.Y && p.Y <= maxCoord(a.Y, b.Y)
}

// SegmentIntersect classifies the intersection of segment a1a2 with
// segment b1b2. Tie-breaks: an endpoint lying exactly on
// the other segment is returned verbatim; two segments sharing exactly one
// endpoint return that shared endpoint; collinear overlap returns the
// overlap interval (possibly degenerate to a single point, reported as
// IntersectPoint).
func SegmentIntersect(a1, a2, b1, b2 Point2) Intersection {
	d1 := Orient2D(b1, b2, a1)
	d2 := Orient2D(b1, b2, a2)
	d3 := Orient2D(a1, a2, b1)
	d4 := Orient2D(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return Intersection{Kind: IntersectPoint, P: properIntersectionPoint(a1, a2, b1, b2)}
	}

	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		// Collinear: project onto the dominant axis and intersect the two
		// 1D intervals.
		return collinearOverlap(a1, a2, b1, b2)
	}

	if d3 == 0 && onSegment(b1, a1, a2) {
		return Intersection{Kind: IntersectPoint, P: b1}
	}
	if d4 == 0 && onSegment(b2, a1, a2) {
		return Intersection{Kind: IntersectPoint, P: b2}
	}
	if d1 == 0 && onSegment(a1, b1, b2) {
		return Intersection{Kind: IntersectPoint, P: a1}
	}
	if d2 == 0 && onSegment(a2, b1, b2) {
		return Intersection{Kind: IntersectPoint, P: a2}
	}

	return Intersection{Kind: IntersectNone}
}

func collinearOverlap(a1, a2, b1, b2 Point2) Intersection {
	useX := absCoord(a2.X-a1.X) >= absCoord(a2.Y-a1.Y)

	coordOf := func(p Point2) coord {
		if useX {
			return p.X
		}
		return p.Y
	}
	aLo, aHi := coordOf(a1), coordOf(a2)
	if aLo > aHi {
		aLo, aHi = aHi, aLo
	}
	bLo, bHi := coordOf(b1), coordOf(b2)
	if bLo > bHi {
		bLo, bHi = bHi, bLo
	}
	lo := maxCoord(aLo, bLo)
	hi := minCoord(aHi, bHi)
	if lo > hi {
		return Intersection{Kind: IntersectCollinear}
	}

	// Reconstruct Point2 for lo/hi along the shared line: lo and hi always
	// equal the dominant-axis coordinate of one of the four input points,
	// and since the four points are exactly collinear, that input point is
	// returned as-is (no interpolation is needed).
	at := func(target coord) Point2 {
		for _, p := range []Point2{a1, a2, b1, b2} {
			if coordOf(p) == target {
				return p
			}
		}
		return a1
	}
	p, q := at(lo), at(hi)
	if lo == hi {
		return Intersection{Kind: IntersectPoint, P: p}
	}
	return Intersection{Kind: IntersectSegment, P: p, Q: q}
}

// properIntersectionPoint solves for the exact crossing point of two
// properly-intersecting segments using widened integer arithmetic
// throughout, rounding the final quotient to the nearest coord.
func properIntersectionPoint(a1, a2, b1, b2 Point2) Point2 {
	x1, y1 := widen(a1.X), widen(a1.Y)
	x2, y2 := widen(a2.X), widen(a2.Y)
	x3, y3 := widen(b1.X), widen(b1.Y)
	x4, y4 := widen(b2.X), widen(b2.Y)

	// Standard line-line intersection determinant form.
	x1x2 := new(big.Int).Sub(x1, x2)
	y3y4 := new(big.Int).Sub(y3, y4)
	y1y2 := new(big.Int).Sub(y1, y2)
	x3x4 := new(big.Int).Sub(x3, x4)

	denom := new(big.Int).Sub(
		new(big.Int).Mul(x1x2, y3y4),
		new(big.Int).Mul(y1y2, x3x4),
	)
	if denom.Sign() == 0 {
		return a1
	}

	detA := new(big.Int).Sub(new(big.Int).Mul(x1, y2), new(big.Int).Mul(y1, x2))
	detB := new(big.Int).Sub(new(big.Int).Mul(x3, y4), new(big.Int).Mul(y3, x4))

	numX := new(big.Int).Sub(
		new(big.Int).Mul(detA, x3x4),
		new(big.Int).Mul(x1x2, detB),
	)
	numY := new(big.Int).Sub(
		new(big.Int).Mul(detA, y3y4),
		new(big.Int).Mul(y1y2, detB),
	)

	return Point2{X: roundedDiv(numX, denom), Y: roundedDiv(numY, denom)}
}

func roundedDiv(num, den *big.Int) coord {
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	r2 := new(big.Int).Mul(r, big.NewInt(2))
	r2.Abs(r2)
	if r2.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return coord(q.Int64())
}

// PointInPolygonRobust reports whether p lies inside poly using a
// winding-number test evaluated entirely through Orient2D. A point lying
// exactly on an edge is treated as belonging to the polygon's interior.
func PointInPolygonRobust(p Point2, poly []Point2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if onSegment(p, a, b) {
			return true
		}
		if a.Y <= p.Y {
			if b.Y > p.Y && Orient2D(a, b, p) > 0 {
				winding++
			}
		} else {
			if b.Y <= p.Y && Orient2D(a, b, p) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// PlaneKind tags the classification of a triangle against an axis-aligned
// Z=z plane.
type PlaneKind int

const (
	// PlaneNone indicates the triangle does not meet the plane.
	PlaneNone PlaneKind = iota
	// PlaneStandard indicates exactly one transverse crossing segment.
	PlaneStandard
	// PlaneVertexOnPlane indicates exactly one vertex lies on the plane.
	PlaneVertexOnPlane
	// PlaneEdgeOnPlane indicates one full edge lies on the plane.
	PlaneEdgeOnPlane
	// PlaneFaceOnPlane indicates all three vertices lie on the plane.
	PlaneFaceOnPlane
)

// PlaneIntersection is the result of triangle_plane_intersection: a kind
// tag plus the resulting segments (0 for None/VertexOnPlane-no-crossing,
// 1 for Standard/VertexOnPlane-crossing/EdgeOnPlane, 3 for FaceOnPlane).
type PlaneIntersection struct {
	Kind     PlaneKind
	Segments [][2]Point2
}

func zSign(z, plane float32) int {
	d := z - plane
	eps := float32(PlaneEpsilonMM)
	switch {
	case d > eps:
		return 1
	case d < -eps:
		return -1
	default:
		return 0
	}
}

func project2(v Vec3f) Point2 {
	return Point2{X: mmToCoord(float64(v.X)), Y: mmToCoord(float64(v.Y))}
}

// crossingPoint returns the point where segment ab (with signed heights
// za, zb straddling the plane) crosses z = plane, by linear interpolation
// on the float vertex positions, then scaled to coord.
func crossingPoint(a, b Vec3f, za, zb, plane float32) Point2 {
	t := (plane - za) / (zb - za)
	x := a.X + (b.X-a.X)*t
	y := a.Y + (b.Y-a.Y)*t
	return Point2{X: mmToCoord(float64(x)), Y: mmToCoord(float64(y))}
}

// TrianglePlaneIntersection classifies triangle (v0,v1,v2) against the
// plane Z=z, using a 3-bit mask built from the sign of each vertex's
// height above the plane. The epsilon is applied in millimeters against
// raw vertex heights, before any coordinate is scaled into coord units.
func TrianglePlaneIntersection(v0, v1, v2 Vec3f, z float32) PlaneIntersection {
	s0, s1, s2 := zSign(v0.Z, z), zSign(v1.Z, z), zSign(v2.Z, z)

	if s0 == 0 && s1 == 0 && s2 == 0 {
		return PlaneIntersection{
			Kind: PlaneFaceOnPlane,
			Segments: [][2]Point2{
				{project2(v0), project2(v1)},
				{project2(v1), project2(v2)},
				{project2(v2), project2(v0)},
			},
		}
	}

	verts := [3]Vec3f{v0, v1, v2}
	signs := [3]int{s0, s1, s2}

	// Edge-on-plane: exactly two vertices on-plane, third strictly off.
	onCount := 0
	for _, s := range signs {
		if s == 0 {
			onCount++
		}
	}
	if onCount == 2 {
		var a, b Vec3f
		found := 0
		for i := 0; i < 3; i++ {
			if signs[i] == 0 {
				if found == 0 {
					a = verts[i]
				} else {
					b = verts[i]
				}
				found++
			}
		}
		return PlaneIntersection{Kind: PlaneEdgeOnPlane, Segments: [][2]Point2{{project2(a), project2(b)}}}
	}

	if onCount == 1 {
		// VertexOnPlane: contributes a segment iff the opposite edge
		// crosses the plane (the two non-plane vertices have opposite
		// sign); otherwise contributes nothing.
		var onVert Vec3f
		var others [2]Vec3f
		var otherSigns [2]int
		oi := 0
		for i := 0; i < 3; i++ {
			if signs[i] == 0 {
				onVert = verts[i]
			} else {
				others[oi] = verts[i]
				otherSigns[oi] = signs[i]
				oi++
			}
		}
		if otherSigns[0] != otherSigns[1] {
			cp := crossingPoint(others[0], others[1], others[0].Z, others[1].Z, z)
			return PlaneIntersection{Kind: PlaneVertexOnPlane, Segments: [][2]Point2{{project2(onVert), cp}}}
		}
		return PlaneIntersection{Kind: PlaneVertexOnPlane, Segments: nil}
	}

	// Standard: no vertex on-plane. A crossing exists iff signs are not
	// all equal.
	if s0 == s1 && s1 == s2 {
		return PlaneIntersection{Kind: PlaneNone}
	}

	var pts []Point2
	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		sa, sb := signs[e[0]], signs[e[1]]
		if sa != sb {
			pts = append(pts, crossingPoint(verts[e[0]], verts[e[1]], verts[e[0]].Z, verts[e[1]].Z, z))
		}
	}
	if len(pts) != 2 {
		return PlaneIntersection{Kind: PlaneNone}
	}
	return PlaneIntersection{Kind: PlaneStandard, Segments: [][2]Point2{{pts[0], pts[1]}}}
}

// PointLineDistance returns the exact perpendicular distance from p to the
// finite segment ab, clamping to the nearer endpoint when p's projection
// falls outside [a,b].
func PointLineDistance(p, a, b Point2) coord {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return distPoints(p, a)
	}

	num := apx*abx + apy*aby
	switch {
	case num <= 0:
		return distPoints(p, a)
	case num >= lenSq:
		return distPoints(p, b)
	}

	// Closest point on the line, computed in float64 for the final
	// distance (exactness matters for topology decisions upstream —
	// orient2d/segmentIntersect — not for this scalar distance metric).
	t := float64(num) / float64(lenSq)
	cx := float64(a.X) + float64(abx)*t
	cy := float64(a.Y) + float64(aby)*t
	dx := float64(p.X) - cx
	dy := float64(p.Y) - cy
	return coord(math.Sqrt(dx*dx + dy*dy))
}

func distPoints(p, q Point2) coord {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return coord(math.Sqrt(dx*dx + dy*dy))
}

// DistanceTo returns the Euclidean distance from p to o in coord units.
// Sub-packages (slice) use this rather than naming the unexported coord
// type themselves, comparing the result directly against exported coord
// constants like EndpointTolerance.
func (p Point2) DistanceTo(o Point2) coord {
	return distPoints(p, o)
}
