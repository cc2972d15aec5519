package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// epsilon guards degenerate roots and near-parallel denominators across the
// primitive kernels (spec.md §4.2-§4.4).
const epsilon = 1e-5

// Sphere is centered at Center with a non-negative Radius.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// NewSphere validates the radius and returns a Sphere.
func NewSphere(center mgl32.Vec3, radius float32) (Sphere, error) {
	if radius < 0 {
		return Sphere{}, ErrNegativeRadius
	}
	return Sphere{Center: center, Radius: radius}, nil
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s Sphere) Bounds() AABB {
	r := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Centroid returns the sphere's center, used by the BVH builder to bin it.
func (s Sphere) Centroid() mgl32.Vec3 {
	return s.Center
}

// Intersect solves the quadratic ||O + tD - C||^2 = r^2 and reports the
// nearest root beyond epsilon.
func (s Sphere) Intersect(r Ray) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := 2 * oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}
	sq := float32(math.Sqrt(float64(disc)))

	t := (-b - sq) / (2 * a)
	if t <= epsilon {
		t = (-b + sq) / (2 * a)
	}
	if t <= epsilon {
		return Hit{}, false
	}

	p := r.At(t)
	n := p.Sub(s.Center).Normalize()
	return Hit{Distance: t, GeometricNormal: n, InterpolatedNormal: n}, true
}
