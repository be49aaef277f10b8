package slicer

import "testing"

func TestAddTriangleOutOfRange(t *testing.T) {
	m := NewIndexedMesh()
	m.AddVertex(Vec3f{0, 0, 0})
	m.AddVertex(Vec3f{1, 0, 0})

	err := m.AddTriangle(0, 1, 5)
	if err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if !IsKind(err, KindInvalidInput) {
		t.Errorf("expected KindInvalidInput, got %v", err)
	}
}

func TestRemoveDegenerate(t *testing.T) {
	m := NewIndexedMesh()
	verts := []Vec3f{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {2, 0, 0}}
	for _, v := range verts {
		m.AddVertex(v)
	}

	// One good triangle, one repeated-index triangle, one zero-area
	// (collinear) triangle.
	if err := m.AddTriangle(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := m.AddTriangle(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := m.AddTriangle(0, 1, 3); err != nil {
		t.Fatal(err)
	}

	removed := m.RemoveDegenerate()
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if len(m.Triangles) != 1 {
		t.Errorf("remaining triangles = %d, want 1", len(m.Triangles))
	}
	stats := m.ComputedStats()
	if stats.FacetsRemoved != 2 {
		t.Errorf("FacetsRemoved = %d, want 2", stats.FacetsRemoved)
	}
}

func TestMeshBoundingBoxAndSurfaceArea(t *testing.T) {
	m := NewIndexedMesh()
	verts := []Vec3f{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}}
	for _, v := range verts {
		m.AddVertex(v)
	}
	if err := m.AddTriangle(0, 1, 2); err != nil {
		t.Fatal(err)
	}

	box := m.BoundingBox()
	if box.Max.X != 10 || box.Max.Y != 10 {
		t.Errorf("bbox = %+v", box)
	}

	area := m.SurfaceArea()
	if area < 49 || area > 51 {
		t.Errorf("surface area = %v, want ~50", area)
	}
}

func TestManifoldCubeHasNoOpenEdges(t *testing.T) {
	m := NewIndexedMesh()
	verts := []Vec3f{
		{-5, -5, -5}, {5, -5, -5}, {5, 5, -5}, {-5, 5, -5},
		{-5, -5, 5}, {5, -5, 5}, {5, 5, 5}, {-5, 5, 5},
	}
	for _, v := range verts {
		m.AddVertex(v)
	}
	faces := [][3]uint32{
		{0, 1, 2}, {0, 2, 3},
		{4, 6, 5}, {4, 7, 6},
		{0, 4, 5}, {0, 5, 1},
		{1, 5, 6}, {1, 6, 2},
		{2, 6, 7}, {2, 7, 3},
		{3, 7, 4}, {3, 4, 0},
	}
	for _, f := range faces {
		if err := m.AddTriangle(f[0], f[1], f[2]); err != nil {
			t.Fatal(err)
		}
	}

	stats := m.ComputedStats()
	if stats.OpenEdges != 0 {
		t.Errorf("OpenEdges = %d, want 0 for a closed cube", stats.OpenEdges)
	}
}

func TestMarkDirtyRecomputes(t *testing.T) {
	m := NewIndexedMesh()
	m.AddVertex(Vec3f{0, 0, 0})
	m.AddVertex(Vec3f{10, 0, 0})
	m.AddVertex(Vec3f{0, 10, 0})
	if err := m.AddTriangle(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	_ = m.BoundingBox()

	m.AddVertex(Vec3f{0, 0, 20})
	if err := m.AddTriangle(0, 1, 3); err != nil {
		t.Fatal(err)
	}

	box := m.BoundingBox()
	if box.Max.Z != 20 {
		t.Errorf("bbox.Max.Z = %v, want 20 after adding a new vertex", box.Max.Z)
	}
}
