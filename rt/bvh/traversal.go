package bvh

import "github.com/gekko3d/raybvh/rt/geom"

// Intersect runs a closest-hit query, per spec.md §4.8. prims must be the
// same slice (in the same order) that Build was called with. The returned
// int is the primitive's position in prims.
func Intersect[P Primitive](b *BVH, ray geom.Ray, prims []P) (int, geom.Hit, bool) {
	if len(b.Nodes) == 0 {
		return 0, geom.Hit{}, false
	}

	bestIdx := -1
	var best geom.Hit

	var visit func(nodeIdx int)
	visit = func(nodeIdx int) {
		node := &b.Nodes[nodeIdx]

		entry, hitBox := node.Box.IntersectDistance(ray)
		if !hitBox {
			return
		}
		if bestIdx >= 0 && entry >= best.Distance {
			return
		}

		if node.Count > 0 {
			for i := int32(0); i < node.Count; i++ {
				primIdx := b.Indices[node.LeftChild+i]
				hit, ok := prims[primIdx].Intersect(ray)
				if ok && (bestIdx < 0 || hit.Distance < best.Distance) {
					hit.Index = int(primIdx)
					best = hit
					bestIdx = int(primIdx)
				}
			}
			return
		}

		left, right := int(node.LeftChild), int(node.LeftChild)+1
		if ray.Sign[splitAxisHint(b, nodeIdx)] != 0 {
			left, right = right, left
		}
		visit(left)
		visit(right)
	}
	visit(0)

	if bestIdx < 0 {
		return 0, geom.Hit{}, false
	}
	return bestIdx, best, true
}

// IntersectAny runs an any-hit (shadow ray) query: it returns true as soon
// as any primitive is hit within maxDistance, per spec.md §4.8.
func IntersectAny[P Primitive](b *BVH, ray geom.Ray, prims []P, maxDistance float32) bool {
	if len(b.Nodes) == 0 {
		return false
	}

	var visit func(nodeIdx int) bool
	visit = func(nodeIdx int) bool {
		node := &b.Nodes[nodeIdx]

		entry, hitBox := node.Box.IntersectDistance(ray)
		if !hitBox || entry > maxDistance {
			return false
		}

		if node.Count > 0 {
			for i := int32(0); i < node.Count; i++ {
				primIdx := b.Indices[node.LeftChild+i]
				hit, ok := prims[primIdx].Intersect(ray)
				if ok && hit.Distance <= maxDistance {
					return true
				}
			}
			return false
		}

		left, right := int(node.LeftChild), int(node.LeftChild)+1
		return visit(left) || visit(right)
	}

	return visit(0)
}

// splitAxisHint orders child traversal front-to-back using the ray's sign
// on the node's dominant box axis; this is purely a performance heuristic
// (spec.md §4.8 only requires the min-distance result, not a specific
// visit order) so an approximate axis choice is fine.
func splitAxisHint(b *BVH, nodeIdx int) int {
	box := b.Nodes[nodeIdx].Box
	extent := box.Max.Sub(box.Min)
	axis := 0
	if extent.Y() > extent[axis] {
		axis = 1
	}
	if extent.Z() > extent[axis] {
		axis = 2
	}
	return axis
}
