// Package bvh builds and queries an axis-aligned bounding box hierarchy
// over a slicer.IndexedMesh's triangles, top-down and SAH-guided: a flat,
// contiguous array of nodes built by recursive subdivision, rather than a
// pointer tree.
package bvh

import "github.com/arl/goslicer"

// Node is one record of an AABBTree's flat node array. A leaf is encoded
// by PrimitiveCount > 0; an internal node has exactly two children at
// LeftChild and LeftChild+1.
type Node struct {
	Box             slicer.BBox3
	LeftChild       uint32
	PrimitiveCount  uint32
	PrimitiveOffset uint32
}

// IsLeaf reports whether the node is a leaf (owns primitives directly).
func (n Node) IsLeaf() bool { return n.PrimitiveCount > 0 }
