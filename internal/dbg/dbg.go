// Command dbg is a scratch tool, not part of the library's tested
// surface: it builds a synthetic cube mesh, runs the full
// IndexedMesh -> AABBTree -> Slice pipeline end to end, and dumps the
// Context log and timers for manual inspection. Run it with
// `go run ./internal/dbg`.
package main

import (
	"fmt"
	"log"

	slicer "github.com/arl/goslicer"
	"github.com/arl/goslicer/bvh"
	"github.com/arl/goslicer/slice"
)

func main() {
	mesh := synthesizeCube(10)

	ctx := slicer.NewContext(true)

	if removed := mesh.RemoveDegenerate(); removed > 0 {
		ctx.Progressf("dropped %d degenerate triangle(s)", removed)
	}

	tree, err := bvh.Build(mesh, ctx, bvh.DefaultBuildOptions())
	if err != nil {
		log.Fatalln("bvh.Build failed:", err)
	}
	if err := tree.Validate(mesh); err != nil {
		log.Fatalln("tree.Validate failed:", err)
	}

	result, err := slice.Slice(mesh, tree, slicer.LayerHeight(2), slicer.NewDefaultGapClosingConfig(), ctx)
	if err != nil {
		log.Fatalln("slice.Slice failed:", err)
	}

	ctx.DumpLog("dbg: cube pipeline trace")

	fmt.Printf("layers: %d\n", len(result.Layers))
	for _, l := range result.Layers {
		fmt.Printf("  z=%6.3f islands=%d\n", l.ZHeight, l.IslandCount)
	}
	fmt.Printf("aabb build time: %v\n", ctx.AccumulatedTime(slicer.TimerAABBBuild))
	fmt.Printf("total time:      %v\n", ctx.AccumulatedTime(slicer.TimerTotal))
}

// synthesizeCube builds an axis-aligned cube mesh centered on the origin,
// sizeMM on a side, as a 12-triangle IndexedMesh.
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
