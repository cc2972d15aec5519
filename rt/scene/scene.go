package scene

import (
	"fmt"

	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/geom"
)

// Scene owns a top-level BVH over a heterogeneous set of Objects. It is
// read-only once built: add every Sphere/Plane/Triangle/Mesh/Instance
// before calling New, not after.
type Scene struct {
	Objects []Object

	tree *bvh.BVH
}

// New builds a Scene's top-level BVH over objects. The slice is kept as
// given; only the BVH's internal index array is reordered.
func New(cfg bvh.Config, objects []Object) (*Scene, error) {
	if len(objects) == 0 {
		return nil, ErrEmpty
	}
	tree, err := bvh.Build(cfg, objects)
	if err != nil {
		return nil, fmt.Errorf("scene: building bvh: %w", err)
	}
	return &Scene{Objects: objects, tree: tree}, nil
}

// Intersect runs a closest-hit query over the whole scene. hit.Index is
// the object's position in s.Objects — any finer-grained index a Mesh or
// Instance reported internally (e.g. a triangle index) is not preserved
// at this level, mirroring how a Mesh's own BVH overwrites the index of
// whatever primitive slice it was built over.
func (s *Scene) Intersect(ray geom.Ray) (geom.Hit, bool) {
	_, hit, ok := bvh.Intersect(s.tree, ray, s.Objects)
	return hit, ok
}

// IntersectAny runs a shadow-ray query: true as soon as anything in the
// scene is hit within maxDistance.
func (s *Scene) IntersectAny(ray geom.Ray, maxDistance float32) bool {
	return bvh.IntersectAny(s.tree, ray, s.Objects, maxDistance)
}

// Bounds returns the scene's overall world-space bounding box.
func (s *Scene) Bounds() geom.AABB {
	return s.tree.Nodes[0].Box
}
