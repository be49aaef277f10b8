package cmd

import (
	"math"

	slicer "github.com/arl/goslicer"
)

// synthesizeCube builds an axis-aligned cube mesh centered on the origin,
// sizeMM on a side, as a 12-triangle IndexedMesh — a quick smoke-test
// primitive for the CLI harness's --primitive flag.
func synthesizeCube(sizeMM float32) *slicer.IndexedMesh {
	h := sizeMM / 2
	m := slicer.NewIndexedMesh()
	verts := []slicer.Vec3f{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	for _, v := range verts {
		m.AddVertex(v)
	}
	faces := [][3]uint32{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 6, 5}, {4, 7, 6}, // top
		{0, 4, 5}, {0, 5, 1}, // -Y wall
		{1, 5, 6}, {1, 6, 2}, // +X wall
		{2, 6, 7}, {2, 7, 3}, // +Y wall
		{3, 7, 4}, {3, 4, 0}, // -X wall
	}
	for _, f := range faces {
		m.AddTriangle(f[0], f[1], f[2])
	}
	return m
}

// synthesizeSphere builds a UV sphere mesh of radius radiusMM, with the
// given number of latitude bands and longitude segments, as a quad-fan
// triangulated IndexedMesh.
func synthesizeSphere(radiusMM float32, stacks, slices int) *slicer.IndexedMesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}
	m := slicer.NewIndexedMesh()

	index := func(stack, slice int) uint32 {
		return uint32(stack*(slices+1) + slice)
	}

	for stack := 0; stack <= stacks; stack++ {
		phi := math.Pi * float64(stack) / float64(stacks)
		y := radiusMM * float32(math.Cos(phi))
		r := radiusMM * float32(math.Sin(phi))
		for slice := 0; slice <= slices; slice++ {
			theta := 2 * math.Pi * float64(slice) / float64(slices)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			m.AddVertex(slicer.Vec3f{X: x, Y: y, Z: z})
		}
	}

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			a := index(stack, slice)
			b := index(stack+1, slice)
			c := index(stack+1, slice+1)
			d := index(stack, slice+1)
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

// synthesizePrimitive dispatches on name, the value of the --primitive
// flag.
func synthesizePrimitive(name string) (*slicer.IndexedMesh, error) {
	switch name {
	case "cube":
		return synthesizeCube(10), nil
	case "sphere":
		return synthesizeSphere(5, 16, 24), nil
	default:
		return nil, slicer.Errorf(slicer.KindInvalidInput, "unknown primitive %q (want cube or sphere)", name)
	}
}
