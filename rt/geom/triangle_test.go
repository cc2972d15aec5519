package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func upTriangle() Triangle {
	up := mgl32.Vec3{0, 0, 1}
	return NewTriangle(
		mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0},
		up, up, up,
	)
}

// S2 from spec.md §8.
func TestTriangleMissFacingAway(t *testing.T) {
	tri := upTriangle()
	ray := NewRay(mgl32.Vec3{0.3, 0.3, 1}, mgl32.Vec3{0, 0, 1})
	_, ok := tri.Intersect(ray)
	if ok {
		t.Fatal("expected no hit: ray points away from the triangle")
	}
}

// S3 from spec.md §8.
func TestTriangleHitBarycentricNormal(t *testing.T) {
	tri := upTriangle()
	ray := NewRay(mgl32.Vec3{0.3, 0.3, 1}, mgl32.Vec3{0, 0, -1})

	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}

	assert.InDelta(t, 1.0, hit.Distance, 1e-4)
	assert.InDelta(t, 0.0, hit.InterpolatedNormal.X(), 1e-4)
	assert.InDelta(t, 0.0, hit.InterpolatedNormal.Y(), 1e-4)
	assert.InDelta(t, 1.0, hit.InterpolatedNormal.Z(), 1e-4)
}

func TestTriangleDegenerateNeverHits(t *testing.T) {
	// Three colinear points: zero-area triangle.
	n := mgl32.Vec3{0, 0, 1}
	tri := NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0}, n, n, n)

	ray := NewRay(mgl32.Vec3{0.5, -1, 0}, mgl32.Vec3{0, 1, 0})
	_, ok := tri.Intersect(ray)
	if ok {
		t.Fatal("a degenerate triangle must never report a hit")
	}
}

func TestTriangleBarycentricSum(t *testing.T) {
	// Vertex normals chosen so that w*n0+u*n1+v*n2 is easy to check by hand.
	n0 := mgl32.Vec3{1, 0, 0}
	n1 := mgl32.Vec3{0, 1, 0}
	n2 := mgl32.Vec3{0, 0, 1}
	tri := NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, n0, n1, n2)

	// Hit the centroid of the triangle, where u = v = w = 1/3.
	centroid := tri.Centroid()
	ray := NewRay(mgl32.Vec3{centroid.X(), centroid.Y(), 1}, mgl32.Vec3{0, 0, -1})
	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit at the centroid")
	}

	expected := n0.Mul(1.0 / 3).Add(n1.Mul(1.0 / 3)).Add(n2.Mul(1.0 / 3)).Normalize()
	assert.InDelta(t, expected.X(), hit.InterpolatedNormal.X(), 1e-3)
	assert.InDelta(t, expected.Y(), hit.InterpolatedNormal.Y(), 1e-3)
	assert.InDelta(t, expected.Z(), hit.InterpolatedNormal.Z(), 1e-3)
}
