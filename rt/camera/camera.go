package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/geom"
)

// Camera generates a sampling Ray per pixel, grounded on the original
// crate's scene::Camera (position, look_at, a Projection, and a fixed
// resolution). Pixel [0,0] is the top-left corner of the image.
type Camera struct {
	position mgl32.Vec3
	lookAt   mgl32.Vec3

	projection Projection
	width      int
	height     int
}

// New constructs a Camera. width and height must both be positive.
func New(position, lookAt mgl32.Vec3, projection Projection, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidResolution
	}
	return &Camera{
		position:   position,
		lookAt:     lookAt,
		projection: projection,
		width:      width,
		height:     height,
	}, nil
}

// Resolution returns the camera's (width, height) in pixels.
func (c *Camera) Resolution() (width, height int) {
	return c.width, c.height
}

// basis returns the camera's forward/right/up unit vectors. Up is chosen
// via forward x world-Z, so the camera cannot look straight along +/-Z
// without the basis degenerating — acceptable for the same reason the
// original crate never guards against it either.
func (c *Camera) basis() (forward, right, up mgl32.Vec3) {
	forward = c.lookAt.Sub(c.position).Normalize()
	right = forward.Cross(mgl32.Vec3{0, 0, 1}).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Ray generates the sampling ray for pixel (row, col), row down from the
// top, col across from the left.
func (c *Camera) Ray(row, col int) (geom.Ray, error) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return geom.Ray{}, fmt.Errorf("%w: row %d col %d, resolution %dx%d", ErrPixelOutOfBounds, row, col, c.width, c.height)
	}

	switch c.projection.Kind {
	case Orthographic:
		return c.orthoRay(row, col), nil
	default:
		return c.perspectiveRay(row, col), nil
	}
}

func (c *Camera) perspectiveRay(row, col int) geom.Ray {
	height := float32(c.height)
	width := float32(c.width)
	const half = 0.5

	dRow := float32(row)/height - half
	dCol := float32(col)/width - half

	aspectRatio := width / height
	halfFov := c.projection.Value * half

	dTheta := -dCol * halfFov
	dPhi := -dRow * (halfFov / aspectRatio)

	forward, right, up := c.basis()

	verticalRotation := mgl32.QuatRotate(dPhi, right)
	lateralRotation := mgl32.QuatRotate(dTheta, up)
	direction := lateralRotation.Rotate(verticalRotation.Rotate(forward))

	return geom.NewRay(c.position, direction)
}

func (c *Camera) orthoRay(row, col int) geom.Ray {
	heightPx := float32(c.height)
	widthPx := float32(c.width)
	const half = 0.5

	u := float32(col)/widthPx - half
	v := float32(row)/heightPx - half

	aspectRatio := widthPx / heightPx
	viewWidth := c.projection.Value
	viewHeight := -viewWidth / aspectRatio

	forward, right, up := c.basis()

	origin := c.position.Add(right.Mul(u * viewWidth)).Add(up.Mul(v * viewHeight))
	return geom.NewRay(origin, forward)
}
