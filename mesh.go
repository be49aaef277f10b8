package slicer

import "github.com/arl/assertgo"

// Triangle is a triplet of vertex indices into an IndexedMesh's Vertices.
type Triangle [3]uint32

// Stats holds the per-mesh statistics and repair counters maintained by an
// IndexedMesh. Manifoldness is defined as OpenEdges == 0.
type Stats struct {
	BBox             BBox3
	SurfaceArea      float32
	NumParts         uint32
	OpenEdges        uint32
	DegenerateFacets uint32
	FacetsRemoved    uint32
	BackwardsEdges   uint32
}

// IndexedMesh is a structure-of-arrays triangle mesh: a Vertices array and
// a Triangles array of index triplets. No shared-edge topology is stored.
// The mesh does not weld coincident vertices and does not perform boolean
// operations; callers that need welding do so before construction.
type IndexedMesh struct {
	Vertices  []Vec3f
	Triangles []Triangle

	stats      Stats
	statsValid bool
}

// NewIndexedMesh returns an empty mesh ready for AddVertex/AddTriangle
// calls.
func NewIndexedMesh() *IndexedMesh {
	return &IndexedMesh{}
}

// AddVertex appends v and returns its index.
func (m *IndexedMesh) AddVertex(v Vec3f) uint32 {
	m.Vertices = append(m.Vertices, v)
	m.markDirty()
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends a triangle referencing vertex indices i0, i1, i2. It
// returns KindInvalidInput if any index is out of range. A triangle with
// two equal indices, or zero geometric area, is still appended (mesh.go
// does not silently drop caller data) but is counted as degenerate in
// Stats; removal of degenerate facets is left to import-time callers,
// which the slicer CLI harness performs via RemoveDegenerate.
func (m *IndexedMesh) AddTriangle(i0, i1, i2 uint32) error {
	n := uint32(len(m.Vertices))
	if i0 >= n || i1 >= n || i2 >= n {
		return Errorf(KindInvalidInput, "triangle vertex index out of range: (%d,%d,%d) against %d vertices", i0, i1, i2, n)
	}
	m.Triangles = append(m.Triangles, Triangle{i0, i1, i2})
	m.markDirty()
	return nil
}

// RemoveDegenerate drops every triangle with a repeated vertex index or
// zero area, returning the count removed. It updates FacetsRemoved.
func (m *IndexedMesh) RemoveDegenerate() int {
	kept := m.Triangles[:0]
	removed := 0
	for _, t := range m.Triangles {
		if m.isDegenerate(t) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.Triangles = kept
	m.markDirty()
	m.computeStats()
	m.stats.FacetsRemoved += uint32(removed)
	return removed
}

func (m *IndexedMesh) isDegenerate(t Triangle) bool {
	if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
		return true
	}
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return triangleArea2(a, b, c) <= Epsilon32
}

// MarkDirty invalidates cached statistics; the next call to ComputedStats
// or BoundingBox or SurfaceArea recomputes them.
func (m *IndexedMesh) MarkDirty() { m.markDirty() }

func (m *IndexedMesh) markDirty() { m.statsValid = false }

func (m *IndexedMesh) computeStats() {
	if m.statsValid {
		return
	}
	var s Stats
	box := Empty3()
	var area float32
	edgeCount := map[[2]uint32]int{}

	for _, t := range m.Triangles {
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			s.DegenerateFacets++
			continue
		}
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		tArea := triangleArea2(a, b, c) * 0.5
		if tArea <= Epsilon32 {
			s.DegenerateFacets++
			continue
		}
		area += tArea
		box = box.UnionPoint(a).UnionPoint(b).UnionPoint(c)

		edges := [3][2]uint32{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
		for _, e := range edges {
			edgeCount[e]++
		}
	}

	// An edge is "open" (boundary) if it appears in only one direction
	// across the whole mesh; it is "backwards" if the same directed edge
	// appears twice (two facets wound the same way along a shared edge,
	// which should face opposite directions on a consistently-oriented
	// manifold).
	var open, backwards uint32
	for e, count := range edgeCount {
		rev := [2]uint32{e[1], e[0]}
		revCount := edgeCount[rev]
		if count > 1 {
			backwards += uint32(count - 1)
		}
		if revCount == 0 {
			open += uint32(count)
		}
	}

	assert.True(len(m.Triangles) == 0 || (box.Min.X <= box.Max.X && box.Min.Y <= box.Max.Y && box.Min.Z <= box.Max.Z),
		"mesh bounding box min > max: %+v", box)

	s.BBox = box
	s.SurfaceArea = area
	s.OpenEdges = open
	s.BackwardsEdges = backwards
	s.NumParts = 1
	if len(m.Triangles) == 0 {
		s.NumParts = 0
	}
	s.FacetsRemoved = m.stats.FacetsRemoved // preserved across recompute

	m.stats = s
	m.statsValid = true
}

// BoundingBox returns the mesh's axis-aligned bounding box over all
// vertices referenced by non-degenerate triangles.
func (m *IndexedMesh) BoundingBox() BBox3 {
	m.computeStats()
	return m.stats.BBox
}

// SurfaceArea returns the sum of non-degenerate triangle areas.
func (m *IndexedMesh) SurfaceArea() float32 {
	m.computeStats()
	return m.stats.SurfaceArea
}

// ComputedStats returns the mesh's current Stats, recomputing them if the
// mesh has been modified since the last computation.
func (m *IndexedMesh) ComputedStats() Stats {
	m.computeStats()
	return m.stats
}

// TriangleVerts returns the three vertices of triangle i.
func (m *IndexedMesh) TriangleVerts(i int) (Vec3f, Vec3f, Vec3f) {
	t := m.Triangles[i]
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}

// TriangleBBox returns the bounding box of triangle i, used by the bvh
// package to build per-triangle leaf boxes.
func (m *IndexedMesh) TriangleBBox(i int) BBox3 {
	a, b, c := m.TriangleVerts(i)
	return Empty3().UnionPoint(a).UnionPoint(b).UnionPoint(c)
}

// TriangleCentroid returns the centroid of triangle i, the point the AABB
// builder sorts and splits on.
func (m *IndexedMesh) TriangleCentroid(i int) Vec3f {
	a, b, c := m.TriangleVerts(i)
	return Vec3f{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}
