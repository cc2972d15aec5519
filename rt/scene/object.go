package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/geom"
)

// Object is anything a Scene can hold. Spheres, planes, triangles, meshes
// and mesh instances all satisfy this already, just by exposing the same
// Bounds/Centroid/Intersect triad the BVH builder needs from any
// primitive — there is no separate tagged-union type to switch over, Go's
// interface satisfaction already gives us the heterogeneous collection
// spec.md §5 asks for.
type Object interface {
	Bounds() geom.AABB
	Centroid() mgl32.Vec3
	Intersect(r geom.Ray) (geom.Hit, bool)
}
