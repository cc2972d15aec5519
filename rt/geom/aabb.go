package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box. The empty AABB inverts the usual
// mins <= maxs invariant on purpose, so that merging anything with it
// restores validity without a special case at every call site.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB constructs an AABB, rejecting inverted bounds.
func NewAABB(min, max mgl32.Vec3) (AABB, error) {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			return AABB{}, ErrInvertedAABB
		}
	}
	return AABB{Min: min, Max: max}, nil
}

// EmptyAABB returns the sentinel empty box: Merge(Empty, A) == A.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// FromPoints returns the smallest AABB containing every given point.
func FromPoints(points ...mgl32.Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.Merge(AABB{Min: p, Max: p})
	}
	return box
}

// Merge returns the smallest AABB containing both a and b.
func (a AABB) Merge(b AABB) AABB {
	return AABB{
		Min: mgl32.Vec3{min32(a.Min.X(), b.Min.X()), min32(a.Min.Y(), b.Min.Y()), min32(a.Min.Z(), b.Min.Z())},
		Max: mgl32.Vec3{max32(a.Max.X(), b.Max.X()), max32(a.Max.Y(), b.Max.Y()), max32(a.Max.Z(), b.Max.Z())},
	}
}

// SurfaceArea returns the box's total surface area, 0 for a degenerate
// (or empty) box.
func (a AABB) SurfaceArea() float32 {
	e := a.Max.Sub(a.Min)
	if e.X() < 0 || e.Y() < 0 || e.Z() < 0 {
		return 0
	}
	return 2 * (e.X()*e.Y() + e.Y()*e.Z() + e.Z()*e.X())
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Transform returns the AABB of the eight corners of a transformed under M,
// computed incrementally (min/max folded in as each corner is visited)
// rather than materialising the corner slice.
func (a AABB) Transform(m mgl32.Mat4) AABB {
	box := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{
			pick(i&1 != 0, a.Min.X(), a.Max.X()),
			pick(i&2 != 0, a.Min.Y(), a.Max.Y()),
			pick(i&4 != 0, a.Min.Z(), a.Max.Z()),
		}
		wc := m.Mul4x1(corner.Vec4(1)).Vec3()
		box = box.Merge(AABB{Min: wc, Max: wc})
	}
	return box
}

// IntersectAny reports whether the ray crosses the box at all.
func (a AABB) IntersectAny(r Ray) bool {
	_, ok := a.slab(r)
	return ok
}

// IntersectDistance returns the ray's entry distance into the box: tMin if
// the origin is outside, tMax if the origin started inside.
func (a AABB) IntersectDistance(r Ray) (float32, bool) {
	return a.slab(r)
}

// slab implements the shared shared-reciprocal slab test from spec.md §4.1:
// per axis, fold the near/far plane distances into a running [tMin, tMax]
// interval, ordering near/far by the ray's precomputed sign so the test
// stays branch-light. A non-finite reciprocal means the ray is parallel to
// that slab; it misses unless the origin already lies within the slab.
func (a AABB) slab(r Ray) (float32, bool) {
	tMin := float32(0)
	tMax := float32(math.Inf(1))

	mins := [3]float32{a.Min.X(), a.Min.Y(), a.Min.Z()}
	maxs := [3]float32{a.Max.X(), a.Max.Y(), a.Max.Z()}
	origin := [3]float32{r.Origin.X(), r.Origin.Y(), r.Origin.Z()}
	invDir := [3]float32{r.InvDir.X(), r.InvDir.Y(), r.InvDir.Z()}

	for i := 0; i < 3; i++ {
		if !isFinite(invDir[i]) {
			if origin[i] < mins[i] || origin[i] > maxs[i] {
				return 0, false
			}
			continue
		}

		t0 := (mins[i] - origin[i]) * invDir[i]
		t1 := (maxs[i] - origin[i]) * invDir[i]

		tNear, tFar := t0, t1
		if r.Sign[i] != 0 {
			tNear, tFar = t1, t0
		}

		tMin = max32(tMin, tNear)
		tMax = min32(tMax, tFar)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin >= 0 {
		return tMin, true
	}
	return tMax, true
}

func isFinite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}

func pick(cond bool, a, b float32) float32 {
	if cond {
		return b
	}
	return a
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
