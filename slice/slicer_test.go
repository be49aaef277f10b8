package slice_test

import (
	"math"
	"testing"

	"github.com/arl/goslicer"
	"github.com/arl/goslicer/bvh"
	"github.com/arl/goslicer/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeMesh builds a 10mm axis-aligned cube [-5,5]^3 mm, 12 triangles.
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
		{0, 1, 2}, {0, 2, 3},
		{4, 6, 5}, {4, 7, 6},
		{0, 4, 5}, {0, 5, 1},
		{1, 5, 6}, {1, 6, 2},
		{2, 6, 7}, {2, 7, 3},
		{3, 7, 4}, {3, 4, 0},
	}
	for _, f := range faces {
		if err := m.AddTriangle(f[0], f[1], f[2]); err != nil {
			panic(err)
		}
	}
	return m
}

func buildTree(t *testing.T, mesh *slicer.IndexedMesh) *bvh.AABBTree {
	t.Helper()
	tree, err := bvh.Build(mesh, nil, bvh.DefaultBuildOptions())
	require.NoError(t, err)
	return tree
}

func TestSliceUnitCube(t *testing.T) {
	mesh := cubeMesh()
	tree := buildTree(t, mesh)

	res, err := slice.Slice(mesh, tree, 2, slicer.NewDefaultGapClosingConfig(), nil)
	require.NoError(t, err)
	require.Len(t, res.Layers, 5)

	var volume float64
	for _, layer := range res.Layers {
		require.Len(t, layer.Polygons, 1)
		ex := layer.Polygons[0]
		assert.Empty(t, ex.Holes)
		area := ex.Area()
		assert.InDelta(t, 100, area, 1, "layer z=%v area", layer.ZHeight)
		volume += area * 2
	}
	assert.InDelta(t, 1000, volume, 10)
}

func TestSliceDenseCubeConstantCrossSection(t *testing.T) {
	// Every plane strictly between the cube's bottom and top face cuts the
	// same square silhouette, since the cube's side walls are vertical;
	// this holds regardless of how the plane schedule's half-step offset
	// lands relative to the faces at z=+-5.
	mesh := cubeMesh()
	tree := buildTree(t, mesh)

	res, err := slice.Slice(mesh, tree, 1, slicer.NewDefaultGapClosingConfig(), nil)
	require.NoError(t, err)
	require.Len(t, res.Layers, 10)

	for _, layer := range res.Layers {
		require.Len(t, layer.Polygons, 1, "layer z=%v", layer.ZHeight)
		assert.InDelta(t, 100, layer.Polygons[0].Area(), 1, "layer z=%v", layer.ZHeight)
		assert.EqualValues(t, 1, layer.IslandCount)
	}
}

func TestSliceEmptyAboveBounds(t *testing.T) {
	mesh := cubeMesh()
	tree := buildTree(t, mesh)

	res, err := slice.Slice(mesh, tree, 2, slicer.NewDefaultGapClosingConfig(), nil)
	require.NoError(t, err)
	for _, layer := range res.Layers {
		assert.LessOrEqual(t, float64(layer.ZHeight), 5.0)
		assert.GreaterOrEqual(t, float64(layer.ZHeight), -5.0)
	}
}

func TestSliceInvalidLayerHeight(t *testing.T) {
	mesh := cubeMesh()
	tree := buildTree(t, mesh)

	_, err := slice.Slice(mesh, tree, 0, slicer.NewDefaultGapClosingConfig(), nil)
	require.Error(t, err)
	assert.True(t, slicer.IsKind(err, slicer.KindInvalidInput))
}

func TestSliceZeroTriangleMesh(t *testing.T) {
	mesh := slicer.NewIndexedMesh()
	_, err := slice.Slice(mesh, nil, 1, slicer.NewDefaultGapClosingConfig(), nil)
	require.Error(t, err)
	assert.True(t, slicer.IsKind(err, slicer.KindInvalidInput))
}

func TestPlaneScheduleMonotone(t *testing.T) {
	planes := slice.PlaneSchedule(-5, 5, 2)
	require.Len(t, planes, 5)
	for i := 1; i < len(planes); i++ {
		assert.Greater(t, planes[i], planes[i-1])
	}
}

// sphereMesh builds a UV-sphere tessellation of radius r, matching the
// CLI's --primitive sphere generator.
func sphereMesh(r float32, stacks, slices int) *slicer.IndexedMesh {
	m := slicer.NewIndexedMesh()
	index := func(stack, slice int) uint32 { return uint32(stack*(slices+1) + slice) }
	for stack := 0; stack <= stacks; stack++ {
		phi := math.Pi * float64(stack) / float64(stacks)
		y := r * float32(math.Cos(phi))
		rad := r * float32(math.Sin(phi))
		for sl := 0; sl <= slices; sl++ {
			theta := 2 * math.Pi * float64(sl) / float64(slices)
			x := rad * float32(math.Cos(theta))
			z := rad * float32(math.Sin(theta))
			m.AddVertex(slicer.Vec3f{X: x, Y: y, Z: z})
		}
	}
	for stack := 0; stack < stacks; stack++ {
		for sl := 0; sl < slices; sl++ {
			a := index(stack, sl)
			b := index(stack+1, sl)
			c := index(stack+1, sl+1)
			d := index(stack, sl+1)
			if stack != 0 {
				m.AddTriangle(a, b, d)
			}
			if stack != stacks-1 {
				m.AddTriangle(b, c, d)
			}
		}
	}
	return m
}

func TestSliceSphereApproximation(t *testing.T) {
	const radius = 10.0
	mesh := sphereMesh(radius, 24, 36)
	tree := buildTree(t, mesh)

	res, err := slice.Slice(mesh, tree, 0.5, slicer.NewDefaultGapClosingConfig(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 40, len(res.Layers), 2)

	for _, layer := range res.Layers {
		// Mesh Y is the polar axis in sphereMesh; the slicer cuts on Z,
		// so this exercises only layers that actually intersect the
		// sphere's silhouette in the XY plane at its native Z extent.
		if layer.ZHeight < -9 || layer.ZHeight > 9 || len(layer.Polygons) == 0 {
			continue
		}
		require.Len(t, layer.Polygons, 1, "layer z=%v", layer.ZHeight)
		assert.True(t, layer.Polygons[0].Contour.IsCCW())
		wantR := math.Sqrt(radius*radius - float64(layer.ZHeight)*float64(layer.ZHeight))
		area := layer.Polygons[0].Area()
		gotR := math.Sqrt(area / math.Pi)
		assert.InEpsilon(t, wantR, gotR, 0.08, "layer z=%v", layer.ZHeight)
	}
}

// cylinderHoleCube builds a 10mm cube centered on the origin with a
// radius-2mm axis-aligned cylindrical hole bored through its Z axis,
// approximated as a 24-sided prism subtracted via an inward-facing CW
// wall (the only way the core's non-boolean mesh model can express a
// hole: two separate shells, outer CCW and inner CW, sharing no
// vertices). Only the side walls of both shells are built; there are no
// top, bottom or end-cap faces, which the layers checked below never cut.
func cylinderHoleCube(side float32, holeR float32, segments int) *slicer.IndexedMesh {
	m := slicer.NewIndexedMesh()
	h := side / 2

	outer := [][3]float32{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	for _, v := range outer {
		m.AddVertex(slicer.Vec3f{X: v[0], Y: v[1], Z: v[2]})
	}
	faces := [][3]uint32{
		{0, 4, 5}, {0, 5, 1},
		{1, 5, 6}, {1, 6, 2},
		{2, 6, 7}, {2, 7, 3},
		{3, 7, 4}, {3, 4, 0},
	}
	for _, f := range faces {
		m.AddTriangle(f[0], f[1], f[2])
	}

	botRing := make([]uint32, segments)
	topRing := make([]uint32, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := holeR * float32(math.Cos(theta))
		y := holeR * float32(math.Sin(theta))
		botRing[i] = m.AddVertex(slicer.Vec3f{X: x, Y: y, Z: -h})
		topRing[i] = m.AddVertex(slicer.Vec3f{X: x, Y: y, Z: h})
	}
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		// Inward-facing wall: CW when viewed from outside the hole so the
		// slicer's per-triangle winding matches the outer shell's.
		m.AddTriangle(botRing[i], topRing[j], topRing[i])
		m.AddTriangle(botRing[i], botRing[j], topRing[j])
	}

	return m
}

func TestSliceCubeWithCylindricalHole(t *testing.T) {
	mesh := cylinderHoleCube(10, 2, 24)
	tree := buildTree(t, mesh)

	res, err := slice.Slice(mesh, tree, 1, slicer.NewDefaultGapClosingConfig(), nil)
	require.NoError(t, err)

	for _, layer := range res.Layers {
		if layer.ZHeight > -4 && layer.ZHeight < 4 {
			require.Len(t, layer.Polygons, 1, "layer z=%v", layer.ZHeight)
			ex := layer.Polygons[0]
			require.Len(t, ex.Holes, 1, "layer z=%v", layer.ZHeight)
			holeArea := -ex.Holes[0].SignedArea()
			assert.InEpsilon(t, math.Pi*4, holeArea, 0.08, "layer z=%v", layer.ZHeight)
		}
	}
}

func TestSliceFaceOnPlaneCube(t *testing.T) {
	mesh := cubeMesh()
	tree := buildTree(t, mesh)

	res, err := slice.Slice(mesh, tree, 1, slicer.NewDefaultGapClosingConfig(), nil)
	require.NoError(t, err)

	for _, layer := range res.Layers {
		if layer.ZHeight == 0 {
			require.Len(t, layer.Polygons, 1)
			assert.EqualValues(t, 1, layer.IslandCount)
			assert.InDelta(t, 100, layer.Polygons[0].Area(), 1)
		}
	}
}

