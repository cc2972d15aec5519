package geom

import "github.com/go-gl/mathgl/mgl32"

// Triangle is a single triangle with per-vertex normals, grounded on the
// teacher pack's Möller-Trumbore kernels (see other_examples df07-go-
// progressive-raytracer's geometry.Triangle). Edge vectors and the
// geometric (face) normal are precomputed once at construction.
type Triangle struct {
	V0, V1, V2 mgl32.Vec3
	N0, N1, N2 mgl32.Vec3

	edge1, edge2 mgl32.Vec3
	geomNormal   mgl32.Vec3
}

// NewTriangle precomputes the edges and face normal. A degenerate
// (colinear) triangle is accepted here — its edges are non-parallel check
// happens lazily at intersection time, where it simply never reports a hit.
func NewTriangle(v0, v1, v2 mgl32.Vec3, n0, n1, n2 mgl32.Vec3) Triangle {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0, N1: n1, N2: n2,
		edge1: e1, edge2: e2,
		geomNormal: e1.Cross(e2).Normalize(),
	}
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() AABB {
	return FromPoints(t.V0, t.V1, t.V2)
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() mgl32.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}

// Intersect implements Möller-Trumbore with a size-relative epsilon, per
// spec.md §4.4.
func (t Triangle) Intersect(r Ray) (Hit, bool) {
	eps := epsilon * max32(t.edge1.Len(), t.edge2.Len())

	h := r.Dir.Cross(t.edge2)
	a := t.edge1.Dot(h)
	if a > -eps && a < eps {
		return Hit{}, false
	}

	s := r.Origin.Sub(t.V0)
	u := s.Dot(h) / a
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	q := s.Cross(t.edge1)
	v := r.Dir.Dot(q) / a
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	dist := t.edge2.Dot(q) / a
	if dist <= eps {
		return Hit{}, false
	}

	w := 1 - u - v
	shading := t.N0.Mul(w).Add(t.N1.Mul(u)).Add(t.N2.Mul(v)).Normalize()

	return Hit{
		Distance:           dist,
		GeometricNormal:    t.geomNormal,
		InterpolatedNormal: shading,
	}, true
}
