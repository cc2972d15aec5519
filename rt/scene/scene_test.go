package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/geom"
	"github.com/gekko3d/raybvh/rt/mesh"
	"github.com/gekko3d/raybvh/rt/scene"
)

func upTriangle() geom.Triangle {
	up := mgl32.Vec3{0, 0, 1}
	return geom.NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, up, up, up)
}

func TestSceneRejectsEmptyObjectSet(t *testing.T) {
	_, err := scene.New(bvh.DefaultConfig(), nil)
	require.ErrorIs(t, err, scene.ErrEmpty)
}

// S5 from spec.md §8, run through the Scene rather than a bare AABB: a
// sphere at the origin, shadow ray queried at two different max distances.
func TestSceneIntersectAnyMaxDistance(t *testing.T) {
	sphere, err := geom.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	require.NoError(t, err)

	sc, err := scene.New(bvh.DefaultConfig(), []scene.Object{sphere})
	require.NoError(t, err)

	ray := geom.NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1})
	assert.False(t, sc.IntersectAny(ray, 3.0))
	assert.True(t, sc.IntersectAny(ray, 5.0))
}

// A scene mixing a sphere, a plane and a mesh instance must report the
// closest hit across all of them, regardless of object kind.
func TestSceneIntersectHeterogeneousObjects(t *testing.T) {
	sphere, err := geom.NewSphere(mgl32.Vec3{0, 0, 10}, 1)
	require.NoError(t, err)
	plane := geom.NewPlane(mgl32.Vec3{0, 0, 20}, mgl32.Vec3{0, 0, -1})

	m, err := mesh.NewMesh(bvh.DefaultConfig(), []geom.Triangle{upTriangle()})
	require.NoError(t, err)
	inst, err := mesh.NewInstance(m, mgl32.Translate3D(10, 0, 0))
	require.NoError(t, err)

	objects := []scene.Object{sphere, plane, inst}
	sc, err := scene.New(bvh.DefaultConfig(), objects)
	require.NoError(t, err)

	// Straight down the +Z axis: sphere front face at z=9 is the closest.
	ray := geom.NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	hit, ok := sc.Intersect(ray)
	require.True(t, ok)
	assert.InDelta(t, 9.0, hit.Distance, 1e-3)
	assert.Equal(t, 0, hit.Index)

	// A ray that only the instance can hit.
	instRay := geom.NewRay(mgl32.Vec3{10.3, 0.3, 1}, mgl32.Vec3{0, 0, -1})
	hit, ok = sc.Intersect(instRay)
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Distance, 1e-3)
	assert.Equal(t, 2, hit.Index)

	// A ray that misses everything.
	missRay := geom.NewRay(mgl32.Vec3{100, 100, 100}, mgl32.Vec3{1, 0, 0})
	_, ok = sc.Intersect(missRay)
	assert.False(t, ok)
}

func TestSceneBoundsCoversAllObjects(t *testing.T) {
	sphere, err := geom.NewSphere(mgl32.Vec3{0, 0, 0}, 1)
	require.NoError(t, err)
	far, err := geom.NewSphere(mgl32.Vec3{50, 0, 0}, 1)
	require.NoError(t, err)

	sc, err := scene.New(bvh.DefaultConfig(), []scene.Object{sphere, far})
	require.NoError(t, err)

	bounds := sc.Bounds()
	assert.GreaterOrEqual(t, bounds.Max.X(), float32(51))
	assert.LessOrEqual(t, bounds.Min.X(), float32(-1))
}
