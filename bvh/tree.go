package bvh

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/arl/goslicer"
)

// BuildOptions controls the top-down SAH-guided builder. Ct/Ci are the
// Surface Area Heuristic's traversal/intersection costs; SplitCandidates
// is K, the number of evenly spaced centroid quantiles evaluated per
// axis; LeafMaxPrimitives is L_max, the target leaf size.
type BuildOptions struct {
	Ct                float32
	Ci                float32
	SplitCandidates   int
	LeafMaxPrimitives int
}

// DefaultBuildOptions returns Ct=1, Ci=1, K=12, L_max=4, a reasonable
// middle ground between split-evaluation precision and build cost.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Ct: 1, Ci: 1, SplitCandidates: 12, LeafMaxPrimitives: 4}
}

// AABBTree is a top-down axis-aligned bounding box hierarchy over a mesh's
// triangles: a flat node array plus a permutation of triangle indices. An
// internal node's two children are always contiguous in the node array
// (LeftChild, LeftChild+1).
type AABBTree struct {
	Nodes            []Node
	PrimitiveIndices []uint32
	Root             uint32
}

type buildItem struct {
	tri      uint32
	box      slicer.BBox3
	centroid slicer.Vec3f
}

// Build constructs an AABBTree over every triangle of mesh. ctx may be nil;
// if non-nil its TimerAABBBuild timer is started/stopped around the whole
// build and Cancelled() is checked once per recursion level, a coarse
// checkpoint granularity chosen so cancellation doesn't add per-triangle
// overhead.
func Build(mesh *slicer.IndexedMesh, ctx *slicer.Context, opts BuildOptions) (*AABBTree, error) {
	ctx.StartTimer(slicer.TimerAABBBuild)
	defer ctx.StopTimer(slicer.TimerAABBBuild)

	n := len(mesh.Triangles)
	if n == 0 {
		return nil, slicer.Errorf(slicer.KindInvalidInput, "cannot build AABBTree: mesh has zero triangles")
	}

	items := make([]buildItem, n)
	for i := 0; i < n; i++ {
		items[i] = buildItem{
			tri:      uint32(i),
			box:      mesh.TriangleBBox(i),
			centroid: mesh.TriangleCentroid(i),
		}
	}

	// A binary tree over n leaves has at most 2n-1 nodes; round up to the
	// next power of two so the node array grows without reallocation
	// during the build.
	b := &builder{opts: opts, ctx: ctx, nodes: make([]Node, 0, slicer.NextPow2(uint32(2*n)))}
	root, err := b.build(items, 0)
	if err != nil {
		return nil, err
	}

	tree := &AABBTree{Nodes: b.nodes, PrimitiveIndices: b.primOrder, Root: root}
	return tree, nil
}

type builder struct {
	opts      BuildOptions
	ctx       *slicer.Context
	nodes     []Node
	primOrder []uint32
}

// build recursively partitions items (already a private copy/slice owned
// by this call) and returns the index of the node it allocated. Leaf
// primitive indices are appended, in leaf order, to b.primOrder.
func (b *builder) build(items []buildItem, depth int) (uint32, error) {
	if b.ctx.Cancelled() {
		return 0, slicer.Errorf(slicer.KindCancelled, "AABBTree build cancelled at depth %d", depth)
	}

	box := slicer.Empty3()
	for _, it := range items {
		box = box.Union(it.box)
	}

	n := len(items)
	idx := uint32(len(b.nodes))
	b.nodes = append(b.nodes, Node{}) // reserve slot; filled below

	if n <= b.opts.LeafMaxPrimitives {
		b.makeLeaf(idx, box, items)
		return idx, nil
	}

	_, splitAt, splitItems, found := b.bestSplit(items, box)
	if !found {
		b.makeLeaf(idx, box, items)
		return idx, nil
	}

	left := splitItems[:splitAt]
	right := splitItems[splitAt:]

	assert.True(len(left) > 0 && len(right) > 0, "AABBTree build: chosen split produced an empty side (left=%d right=%d)", len(left), len(right))

	leftIdx, err := b.build(left, depth+1)
	if err != nil {
		return 0, err
	}
	rightIdx, err := b.build(right, depth+1)
	if err != nil {
		return 0, err
	}
	if rightIdx != leftIdx+1 {
		return 0, slicer.Errorf(slicer.KindInconsistency, "AABBTree build: children not contiguous (left=%d right=%d)", leftIdx, rightIdx)
	}

	b.nodes[idx] = Node{Box: box, LeftChild: leftIdx, PrimitiveCount: 0}
	return idx, nil
}

func (b *builder) makeLeaf(idx uint32, box slicer.BBox3, items []buildItem) {
	offset := uint32(len(b.primOrder))
	for _, it := range items {
		b.primOrder = append(b.primOrder, it.tri)
	}
	b.nodes[idx] = Node{
		Box:             box,
		PrimitiveCount:  uint32(len(items)),
		PrimitiveOffset: offset,
	}
}

// bestSplit evaluates up to three axes and SplitCandidates evenly spaced
// centroid-sorted split positions per axis, using the Surface Area
// Heuristic cost model. It returns the chosen axis, the
// split index into the axis-sorted copy of items, that sorted copy, and
// whether any split beat the no-split (single leaf) cost of N*Ci.
func (b *builder) bestSplit(items []buildItem, parent slicer.BBox3) (axis int, splitAt int, sorted []buildItem, found bool) {
	n := len(items)
	parentSA := parent.SurfaceArea()
	if parentSA == 0 {
		parentSA = 1
	}
	noSplitCost := float32(n) * b.opts.Ci

	bestCost := noSplitCost
	var bestAxis, bestSplitAt int
	var bestSorted []buildItem

	for ax := 0; ax < 3; ax++ {
		cand := make([]buildItem, n)
		copy(cand, items)
		sort.Slice(cand, func(i, j int) bool {
			return axisOf(cand[i].centroid, ax) < axisOf(cand[j].centroid, ax)
		})

		prefixSA := make([]float32, n+1)
		suffixSA := make([]float32, n+1)
		pBox := slicer.Empty3()
		for i := 0; i < n; i++ {
			pBox = pBox.Union(cand[i].box)
			prefixSA[i+1] = pBox.SurfaceArea()
		}
		sBox := slicer.Empty3()
		for i := n - 1; i >= 0; i-- {
			sBox = sBox.Union(cand[i].box)
			suffixSA[i] = sBox.SurfaceArea()
		}

		k := b.opts.SplitCandidates
		if k <= 0 || k > n-1 {
			k = n - 1
		}
		if k < 1 {
			continue
		}
		for c := 1; c <= k; c++ {
			// Evenly spaced candidate split positions across the sorted
			// index range.
			split := c * n / (k + 1)
			if split <= 0 || split >= n {
				continue
			}
			nLeft := float32(split)
			nRight := float32(n - split)
			cost := b.opts.Ct +
				(prefixSA[split]/parentSA)*nLeft*b.opts.Ci +
				(suffixSA[split]/parentSA)*nRight*b.opts.Ci
			if cost < bestCost {
				bestCost = cost
				bestAxis = ax
				bestSplitAt = split
				bestSorted = cand
				found = true
			}
		}
	}

	if !found {
		return 0, 0, nil, false
	}
	return bestAxis, bestSplitAt, bestSorted, true
}

func axisOf(v slicer.Vec3f, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
