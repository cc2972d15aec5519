package bvh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/geom"
)

// Primitive is whatever Build and Intersect accept: something with a
// bounding box, a centroid for SAH binning, and its own ray intersection
// kernel (Sphere, Plane, Triangle, Mesh and Instance all satisfy this).
type Primitive interface {
	Bounds() geom.AABB
	Centroid() mgl32.Vec3
	Intersect(r geom.Ray) (geom.Hit, bool)
}

// Node is one entry of the flat node array. Count > 0 marks a leaf holding
// Count indices starting at LeftChild within the BVH's Indices array;
// Count == 0 marks an internal node whose children live at LeftChild and
// LeftChild+1.
type Node struct {
	Box       geom.AABB
	LeftChild int32
	Count     int32
}

// BVH is an immutable, binary bounding volume hierarchy: a permuted index
// array plus a flat node array. Node 0 is always the root.
type BVH struct {
	Nodes   []Node
	Indices []int32
	Depth   int
}

type bucket struct {
	count int
	box   geom.AABB
}

// Build runs the top-down, binned-SAH construction described in
// spec.md §4.7 over an arbitrary slice of bounded, intersectable
// primitives. The primitive slice itself is never reordered — only the
// returned BVH's Indices array is.
func Build[P Primitive](cfg Config, prims []P) (*BVH, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := len(prims)
	if n == 0 {
		return nil, ErrEmpty
	}

	bounds := make([]geom.AABB, n)
	centroids := make([]mgl32.Vec3, n)
	for i, p := range prims {
		bounds[i] = p.Bounds()
		centroids[i] = p.Centroid()
	}

	indices := make([]int32, n)
	for i := range indices {
		indices[i] = int32(i)
	}

	b := &builder{
		cfg:       cfg,
		bounds:    bounds,
		centroids: centroids,
		indices:   indices,
		nodes:     make([]Node, 2*n-1),
		nextFree:  1,
	}
	b.build(0, 0, n, 0)
	b.nodes = b.nodes[:b.nextFree]

	return &BVH{Nodes: b.nodes, Indices: b.indices, Depth: b.maxDepth}, nil
}

type builder struct {
	cfg       Config
	bounds    []geom.AABB
	centroids []mgl32.Vec3
	indices   []int32
	nodes     []Node
	nextFree  int
	maxDepth  int
}

func (b *builder) build(nodeIdx, start, end, depth int) {
	if depth > b.maxDepth {
		b.maxDepth = depth
	}

	box := geom.EmptyAABB()
	for i := start; i < end; i++ {
		box = box.Merge(b.bounds[b.indices[i]])
	}
	b.nodes[nodeIdx].Box = box

	count := end - start
	leaf := func() {
		b.nodes[nodeIdx].LeftChild = int32(start)
		b.nodes[nodeIdx].Count = int32(count)
	}

	if count <= b.cfg.MaxPrimitivesPerLeaf || depth >= b.cfg.MaxDepth {
		leaf()
		return
	}

	axis, splitCoord, bestCost, found := b.findBestSplit(box, start, end)
	leafCost := float32(count) * b.cfg.IntersectCost
	if !found || bestCost >= leafCost {
		leaf()
		return
	}

	mid := b.partition(start, end, axis, splitCoord)
	if mid == start || mid == end {
		leaf()
		return
	}

	leftIdx, rightIdx := b.nextFree, b.nextFree+1
	b.nextFree += 2
	b.nodes[nodeIdx].LeftChild = int32(leftIdx)
	b.nodes[nodeIdx].Count = 0

	b.build(leftIdx, start, mid, depth+1)
	b.build(rightIdx, mid, end, depth+1)
}

// findBestSplit bins centroids into NumBuckets equal-width buckets per
// axis and evaluates the SAH cost of every bucket boundary, keeping the
// earliest axis and lowest split index on a cost tie.
func (b *builder) findBestSplit(nodeBox geom.AABB, start, end int) (axis int, splitCoord float32, bestCost float32, found bool) {
	nodeSA := nodeBox.SurfaceArea()
	numBuckets := b.cfg.NumBuckets

	for a := 0; a < 3; a++ {
		lo, hi := nodeBox.Min[a], nodeBox.Max[a]
		extent := hi - lo
		if extent <= 0 {
			continue
		}

		buckets := make([]bucket, numBuckets)
		for i := range buckets {
			buckets[i].box = geom.EmptyAABB()
		}
		for i := start; i < end; i++ {
			idx := b.indices[i]
			c := b.centroids[idx][a]
			bucketIdx := int(float32(numBuckets) * (c - lo) / extent)
			if bucketIdx < 0 {
				bucketIdx = 0
			}
			if bucketIdx >= numBuckets {
				bucketIdx = numBuckets - 1
			}
			buckets[bucketIdx].count++
			buckets[bucketIdx].box = buckets[bucketIdx].box.Merge(b.bounds[idx])
		}

		for k := 1; k < numBuckets; k++ {
			leftBox := geom.EmptyAABB()
			leftCount := 0
			for i := 0; i < k; i++ {
				if buckets[i].count == 0 {
					continue
				}
				leftBox = leftBox.Merge(buckets[i].box)
				leftCount += buckets[i].count
			}
			rightBox := geom.EmptyAABB()
			rightCount := 0
			for i := k; i < numBuckets; i++ {
				if buckets[i].count == 0 {
					continue
				}
				rightBox = rightBox.Merge(buckets[i].box)
				rightCount += buckets[i].count
			}
			if leftCount == 0 || rightCount == 0 {
				continue
			}

			cost := b.cfg.TraverseCost +
				(leftBox.SurfaceArea()/nodeSA)*float32(leftCount)*b.cfg.IntersectCost +
				(rightBox.SurfaceArea()/nodeSA)*float32(rightCount)*b.cfg.IntersectCost

			if !found || cost < bestCost {
				found = true
				bestCost = cost
				axis = a
				splitCoord = lo + extent*float32(k)/float32(numBuckets)
			}
		}
	}

	return axis, splitCoord, bestCost, found
}

// partition performs a Hoare-style two-pointer exchange over indices
// [start,end): centroids strictly below splitCoord on axis go left.
func (b *builder) partition(start, end, axis int, splitCoord float32) int {
	i, j := start, end-1
	for i <= j {
		for i <= j && b.centroids[b.indices[i]][axis] < splitCoord {
			i++
		}
		for i <= j && !(b.centroids[b.indices[j]][axis] < splitCoord) {
			j--
		}
		if i < j {
			b.indices[i], b.indices[j] = b.indices[j], b.indices[i]
			i++
			j--
		}
	}
	return i
}
