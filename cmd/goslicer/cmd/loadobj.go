package cmd

import (
	"os"

	"github.com/arl/gobj"
	slicer "github.com/arl/goslicer"
)

// loadOBJMesh decodes the Wavefront OBJ file at path into an IndexedMesh.
// Polygonal faces wider than a triangle are fan-triangulated around their
// first vertex.
func loadOBJMesh(path string) (*slicer.IndexedMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, slicer.Errorf(slicer.KindInvalidInput, "open %s: %v", path, err)
	}
	defer f.Close()

	obj, err := gobj.Decode(f)
	if err != nil {
		return nil, slicer.Errorf(slicer.KindInvalidInput, "decode %s: %v", path, err)
	}

	m := slicer.NewIndexedMesh()
	for _, v := range obj.Vertices {
		m.AddVertex(slicer.Vec3f{X: v.X, Y: v.Y, Z: v.Z})
	}
	for _, face := range obj.Faces {
		if len(face) < 3 {
			continue
		}
		i0 := uint32(face[0])
		for i := 1; i+1 < len(face); i++ {
			i1 := uint32(face[i])
			i2 := uint32(face[i+1])
			if err := m.AddTriangle(i0, i1, i2); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
