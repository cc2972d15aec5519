package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/raybvh/rt/camera"
)

func TestNewRejectsZeroResolution(t *testing.T) {
	_, err := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, camera.NewPerspective(1), 0, 10)
	require.ErrorIs(t, err, camera.ErrInvalidResolution)

	_, err = camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, camera.NewPerspective(1), 10, 0)
	require.ErrorIs(t, err, camera.ErrInvalidResolution)
}

func TestRayRejectsOutOfBoundsPixel(t *testing.T) {
	cam, err := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, camera.NewPerspective(1), 100, 50)
	require.NoError(t, err)

	_, err = cam.Ray(50, 0)
	require.ErrorIs(t, err, camera.ErrPixelOutOfBounds)
	_, err = cam.Ray(0, 100)
	require.ErrorIs(t, err, camera.ErrPixelOutOfBounds)
}

// Pixel (height/2, width/2) aims through the image centre, so it must point
// directly at look_at.
func TestPerspectiveCenterPixelLooksAtTarget(t *testing.T) {
	position := mgl32.Vec3{0, 0, 0}
	lookAt := mgl32.Vec3{0, 10, 0}

	cam, err := camera.New(position, lookAt, camera.NewPerspective(mgl32.DegToRad(60)), 100, 100)
	require.NoError(t, err)

	ray, err := cam.Ray(50, 50)
	require.NoError(t, err)

	expected := lookAt.Sub(position).Normalize()
	assert.InDelta(t, expected.X(), ray.Dir.X(), 1e-3)
	assert.InDelta(t, expected.Y(), ray.Dir.Y(), 1e-3)
	assert.InDelta(t, expected.Z(), ray.Dir.Z(), 1e-3)
}

// Every orthographic ray shares the same (forward) direction.
func TestOrthographicRaysShareDirection(t *testing.T) {
	cam, err := camera.New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, camera.NewOrthographic(4), 32, 16)
	require.NoError(t, err)

	first, err := cam.Ray(0, 0)
	require.NoError(t, err)
	second, err := cam.Ray(15, 31)
	require.NoError(t, err)

	assert.InDelta(t, first.Dir.X(), second.Dir.X(), 1e-5)
	assert.InDelta(t, first.Dir.Y(), second.Dir.Y(), 1e-5)
	assert.InDelta(t, first.Dir.Z(), second.Dir.Z(), 1e-5)
	assert.NotEqual(t, first.Origin, second.Origin)
}

func TestResolutionReportsConstructedSize(t *testing.T) {
	cam, err := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, camera.NewPerspective(1), 64, 48)
	require.NoError(t, err)

	w, h := cam.Resolution()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}
