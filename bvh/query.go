package bvh

import "github.com/arl/goslicer"

// PlaneIntersect returns the indices of every triangle held by a leaf whose
// box straddles the plane Z=z. Every triangle whose own bounding box
// straddles the plane is included; the triangles of a reached leaf are
// returned as a whole and are not tested one by one, so the result can
// also hold triangles whose own box does not reach z. It is the slicer's
// primary query: candidate collection for each plane of the schedule.
// Results are not deduplicated
// (a triangle appears at most once by construction) and not ordered.
func (t *AABBTree) PlaneIntersect(z float32) []uint32 {
	var out []uint32
	t.walkPlane(t.Root, z, &out)
	return out
}

func (t *AABBTree) walkPlane(nodeIdx uint32, z float32, out *[]uint32) {
	node := &t.Nodes[nodeIdx]
	if !node.Box.OverlapsZ(z) {
		return
	}
	if node.IsLeaf() {
		for i := uint32(0); i < node.PrimitiveCount; i++ {
			*out = append(*out, t.PrimitiveIndices[node.PrimitiveOffset+i])
		}
		return
	}
	t.walkPlane(node.LeftChild, z, out)
	t.walkPlane(node.LeftChild+1, z, out)
}

// BoxIntersect returns the indices of every triangle held by a leaf whose
// box overlaps box. As with PlaneIntersect, a reached leaf's triangles are
// returned as a whole, without testing each triangle's own box.
func (t *AABBTree) BoxIntersect(box slicer.BBox3) []uint32 {
	var out []uint32
	t.walkBox(t.Root, box, &out)
	return out
}

func (t *AABBTree) walkBox(nodeIdx uint32, box slicer.BBox3, out *[]uint32) {
	node := &t.Nodes[nodeIdx]
	if !node.Box.Overlaps(box) {
		return
	}
	if node.IsLeaf() {
		for i := uint32(0); i < node.PrimitiveCount; i++ {
			*out = append(*out, t.PrimitiveIndices[node.PrimitiveOffset+i])
		}
		return
	}
	t.walkBox(node.LeftChild, box, out)
	t.walkBox(node.LeftChild+1, box, out)
}

// Ray is a ray in mesh space: Origin + t*Dir for t > 0.
type Ray struct {
	Origin, Dir slicer.Vec3f
}

// RayHit is the result of a successful RayIntersect: the hit triangle's
// index, its barycentric coordinates (U, V; W = 1-U-V), and the ray
// parameter T.
type RayHit struct {
	Triangle uint32
	U, V     float32
	T        float32
}

// RayIntersect returns the nearest hit along ray against mesh's triangles,
// descending the tree with a slab test against each node's box, or false
// on a miss.
func (t *AABBTree) RayIntersect(ray Ray, mesh *slicer.IndexedMesh) (RayHit, bool) {
	best := RayHit{T: float32(3.0e38)}
	found := false
	t.walkRay(t.Root, ray, mesh, &best, &found)
	return best, found
}

func (t *AABBTree) walkRay(nodeIdx uint32, ray Ray, mesh *slicer.IndexedMesh, best *RayHit, found *bool) {
	node := &t.Nodes[nodeIdx]
	if !slabIntersect(node.Box, ray) {
		return
	}
	if node.IsLeaf() {
		for i := uint32(0); i < node.PrimitiveCount; i++ {
			triIdx := t.PrimitiveIndices[node.PrimitiveOffset+i]
			a, b, c := mesh.TriangleVerts(int(triIdx))
			if hit, ok := rayTriangle(ray, a, b, c); ok && hit.T > 0 && (!*found || hit.T < best.T) {
				hit.Triangle = triIdx
				*best = hit
				*found = true
			}
		}
		return
	}
	t.walkRay(node.LeftChild, ray, mesh, best, found)
	t.walkRay(node.LeftChild+1, ray, mesh, best, found)
}

func slabIntersect(box slicer.BBox3, ray Ray) bool {
	tmin, tmax := float32(0), float32(3.0e38)
	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	origin := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float32{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < mins[i] || origin[i] > maxs[i] {
				return false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (mins[i] - origin[i]) * inv
		t2 := (maxs[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

// rayTriangle implements the Möller-Trumbore ray/triangle test.
func rayTriangle(ray Ray, a, b, c slicer.Vec3f) (RayHit, bool) {
	const eps = 1e-8
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	h := cross(ray.Dir, e2)
	det := dot(e1, h)
	if det > -eps && det < eps {
		return RayHit{}, false
	}
	invDet := 1 / det

	s := ray.Origin.Sub(a)
	u := invDet * dot(s, h)
	if u < 0 || u > 1 {
		return RayHit{}, false
	}

	q := cross(s, e1)
	v := invDet * dot(ray.Dir, q)
	if v < 0 || u+v > 1 {
		return RayHit{}, false
	}

	tParam := invDet * dot(e2, q)
	return RayHit{U: u, V: v, T: tParam}, true
}

func cross(a, b slicer.Vec3f) slicer.Vec3f {
	return slicer.Vec3f{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dot(a, b slicer.Vec3f) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
