package bvh

import "github.com/arl/goslicer"

// Validate checks every AABBTree invariant: every
// internal node's box bounds its children; every leaf's box bounds all
// its primitives; every primitive index is in range; the permutation of
// PrimitiveIndices is a bijection to [0, triangleCount). It returns the
// first violation found as a *slicer.Error of KindInconsistency, or nil.
func (t *AABBTree) Validate(mesh *slicer.IndexedMesh) error {
	if len(t.Nodes) == 0 {
		return slicer.Errorf(slicer.KindInconsistency, "AABBTree has no nodes")
	}

	triCount := len(mesh.Triangles)
	seen := make([]bool, triCount)
	for _, idx := range t.PrimitiveIndices {
		if int(idx) >= triCount {
			return slicer.Errorf(slicer.KindInconsistency, "AABBTree primitive index %d out of range (%d triangles)", idx, triCount)
		}
		if seen[idx] {
			return slicer.Errorf(slicer.KindInconsistency, "AABBTree primitive index %d appears more than once", idx)
		}
		seen[idx] = true
	}
	if len(t.PrimitiveIndices) != triCount {
		return slicer.Errorf(slicer.KindInconsistency, "AABBTree primitive_indices length %d does not match triangle count %d", len(t.PrimitiveIndices), triCount)
	}
	for i, ok := range seen {
		if !ok {
			return slicer.Errorf(slicer.KindInconsistency, "AABBTree primitive_indices is not a bijection: triangle %d missing", i)
		}
	}

	return t.validateNode(t.Root, mesh)
}

func (t *AABBTree) validateNode(nodeIdx uint32, mesh *slicer.IndexedMesh) error {
	if int(nodeIdx) >= len(t.Nodes) {
		return slicer.Errorf(slicer.KindInconsistency, "AABBTree node index %d out of range", nodeIdx)
	}
	node := &t.Nodes[nodeIdx]

	if node.IsLeaf() {
		for i := uint32(0); i < node.PrimitiveCount; i++ {
			triIdx := t.PrimitiveIndices[node.PrimitiveOffset+i]
			triBox := mesh.TriangleBBox(int(triIdx))
			if !boundsContains(node.Box, triBox) {
				return slicer.Errorf(slicer.KindInconsistency, "AABBTree leaf %d box does not bound primitive %d", nodeIdx, triIdx)
			}
		}
		return nil
	}

	left := node.LeftChild
	right := node.LeftChild + 1
	if int(right) >= len(t.Nodes) {
		return slicer.Errorf(slicer.KindInconsistency, "AABBTree node %d has out-of-range right child %d", nodeIdx, right)
	}
	if !boundsContains(node.Box, t.Nodes[left].Box) {
		return slicer.Errorf(slicer.KindInconsistency, "AABBTree node %d box does not bound left child", nodeIdx)
	}
	if !boundsContains(node.Box, t.Nodes[right].Box) {
		return slicer.Errorf(slicer.KindInconsistency, "AABBTree node %d box does not bound right child", nodeIdx)
	}

	if err := t.validateNode(left, mesh); err != nil {
		return err
	}
	return t.validateNode(right, mesh)
}

func boundsContains(outer, inner slicer.BBox3) bool {
	const slack = 1e-4 // float32 accumulation slack across Union calls
	return inner.Min.X >= outer.Min.X-slack && inner.Max.X <= outer.Max.X+slack &&
		inner.Min.Y >= outer.Min.Y-slack && inner.Max.Y <= outer.Max.Y+slack &&
		inner.Min.Z >= outer.Min.Z-slack && inner.Max.Z <= outer.Max.Z+slack
}
