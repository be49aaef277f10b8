// Package slicer implements the geometric core of a 3D-printing slicer: a
// fixed-point 2D coordinate system with robust predicates, indexed triangle
// meshes, and the data types a layer slicer consumes and produces.
//
// The heavy algorithms live in two sub-packages:
//
//   - bvh builds and queries an axis-aligned bounding box hierarchy over a
//     mesh's triangles.
//   - slice walks a plane schedule over a mesh and its bvh.AABBTree,
//     extracts cross-section segments, stitches them into closed rings and
//     assembles them into ExPolygons.
//
// The general life-cycle is:
//
//   - Build an IndexedMesh once per input file.
//   - Build a bvh.AABBTree over that mesh.
//   - Call slice.Slice repeatedly (the mesh and tree are read-only and may
//     be reused across many slicing runs).
package slicer
