package geom

import "github.com/go-gl/mathgl/mgl32"

// Hit is the result of a successful intersection: the entry distance along
// the ray, the two reported normals, and the index of the primitive that
// was hit (filled in by the caller that owns the primitive slice — a bare
// Sphere/Plane/Triangle doesn't know its own position in a collection).
type Hit struct {
	Distance           float32
	GeometricNormal    mgl32.Vec3
	InterpolatedNormal mgl32.Vec3
	Index              int
}
