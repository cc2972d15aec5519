package geom

import "github.com/go-gl/mathgl/mgl32"

// planeExtent bounds the otherwise-infinite plane so it can still
// participate in a BVH; this is a pragmatic stand-in and has no bearing on
// the ray/plane intersection math itself.
const planeExtent = 1e5

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

// NewPlane normalizes Normal and returns a Plane.
func NewPlane(point, normal mgl32.Vec3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// Bounds returns a large finite box standing in for the plane's true
// (infinite) extent.
func (p Plane) Bounds() AABB {
	e := mgl32.Vec3{planeExtent, planeExtent, planeExtent}
	return AABB{Min: p.Point.Sub(e), Max: p.Point.Add(e)}
}

// Centroid returns the plane's reference point.
func (p Plane) Centroid() mgl32.Vec3 {
	return p.Point
}

// Intersect follows spec.md §4.3: reject rays nearly parallel to the plane,
// reject hits behind the origin, and flip the reported normal when the ray
// strikes the back face.
func (p Plane) Intersect(r Ray) (Hit, bool) {
	denom := r.Dir.Dot(p.Normal)
	if denom > -epsilon && denom < epsilon {
		return Hit{}, false
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < epsilon {
		return Hit{}, false
	}

	n := p.Normal
	if denom > 0 {
		n = n.Mul(-1)
	}
	return Hit{Distance: t, GeometricNormal: n, InterpolatedNormal: n}, true
}
