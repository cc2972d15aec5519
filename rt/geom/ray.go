package geom

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line in object or world space. Dir is always unit length;
// InvDir and Sign are derived from it so every slab test along the ray can
// reuse them instead of recomputing a division per AABB.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
	InvDir mgl32.Vec3
	Sign   [3]int
}

// NewRay builds a Ray from an origin and an arbitrary (non-zero) direction,
// normalizing the direction and precomputing the reciprocal and sign state
// the AABB slab test needs.
func NewRay(origin, dir mgl32.Vec3) Ray {
	unit := dir.Normalize()
	inv := mgl32.Vec3{1 / unit.X(), 1 / unit.Y(), 1 / unit.Z()}
	r := Ray{Origin: origin, Dir: unit, InvDir: inv}
	for i := 0; i < 3; i++ {
		if inv[i] < 0 {
			r.Sign[i] = 1
		}
	}
	return r
}

// At returns the point origin + t*dir.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
