package bvh_test

import (
	"testing"

	"github.com/arl/goslicer"
	"github.com/arl/goslicer/bvh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeMesh() *slicer.IndexedMesh {
	m := slicer.NewIndexedMesh()
	verts := []slicer.Vec3f{
		{-5, -5, -5}, {5, -5, -5}, {5, 5, -5}, {-5, 5, -5},
		{-5, -5, 5}, {5, -5, 5}, {5, 5, 5}, {-5, 5, 5},
	}
	for _, v := range verts {
		m.AddVertex(v)
	}
	faces := [][3]uint32{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 6, 5}, {4, 7, 6}, // top
		{0, 4, 5}, {0, 5, 1}, // front
		{1, 5, 6}, {1, 6, 2}, // right
		{2, 6, 7}, {2, 7, 3}, // back
		{3, 7, 4}, {3, 4, 0}, // left
	}
	for _, f := range faces {
		if err := m.AddTriangle(f[0], f[1], f[2]); err != nil {
			panic(err)
		}
	}
	return m
}

func TestBuildAndValidate(t *testing.T) {
	mesh := cubeMesh()
	tree, err := bvh.Build(mesh, nil, bvh.DefaultBuildOptions())
	require.NoError(t, err)
	assert.NoError(t, tree.Validate(mesh))
	assert.Len(t, tree.PrimitiveIndices, len(mesh.Triangles))
}

func TestPlaneIntersectCompleteness(t *testing.T) {
	mesh := cubeMesh()
	tree, err := bvh.Build(mesh, nil, bvh.DefaultBuildOptions())
	require.NoError(t, err)

	for _, z := range []float32{-5, -2.5, 0, 2.5, 5} {
		got := map[uint32]bool{}
		for _, i := range tree.PlaneIntersect(z) {
			got[i] = true
		}
		for i := range mesh.Triangles {
			box := mesh.TriangleBBox(i)
			if box.OverlapsZ(z) {
				assert.True(t, got[uint32(i)], "triangle %d straddles z=%v but was not returned", i, z)
			}
		}
	}
}

func TestPlaneIntersectOutsideBounds(t *testing.T) {
	mesh := cubeMesh()
	tree, err := bvh.Build(mesh, nil, bvh.DefaultBuildOptions())
	require.NoError(t, err)

	assert.Empty(t, tree.PlaneIntersect(100))
	assert.Empty(t, tree.PlaneIntersect(-100))
}

func TestBuildEmptyMesh(t *testing.T) {
	mesh := slicer.NewIndexedMesh()
	_, err := bvh.Build(mesh, nil, bvh.DefaultBuildOptions())
	require.Error(t, err)
	assert.True(t, slicer.IsKind(err, slicer.KindInvalidInput))
}

func TestBuildCancelled(t *testing.T) {
	mesh := cubeMesh()
	ctx := slicer.NewContext(true)
	ctx.Cancel()
	_, err := bvh.Build(mesh, ctx, bvh.DefaultBuildOptions())
	require.Error(t, err)
	assert.True(t, slicer.IsKind(err, slicer.KindCancelled))
}
