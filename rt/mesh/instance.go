package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/geom"
)

// invertibleEpsilon below this determinant magnitude, a transform is
// treated as non-invertible.
const invertibleEpsilon = 1e-8

// Instance is a non-owning reference to a Mesh plus a placement transform.
// It must not outlive the Mesh it points to, nor any Scene that holds it.
type Instance struct {
	mesh *Mesh

	objectToWorld mgl32.Mat4
	worldToObject mgl32.Mat4
	worldAABB     geom.AABB

	// normalTransform is the inverse-transpose of the linear (upper-left
	// 3x3) part of objectToWorld, computed independently of worldToObject
	// so it stays correct even for non-affine-compatible basis matrices
	// (spec.md §9, redesign note (b)).
	normalTransform mgl32.Mat3
}

// NewInstance binds mesh to a world-space placement. transform must be
// invertible.
func NewInstance(mesh *Mesh, transform mgl32.Mat4) (*Instance, error) {
	det := transform.Det()
	if det > -invertibleEpsilon && det < invertibleEpsilon {
		return nil, ErrNonInvertible
	}

	worldToObject := transform.Inv()
	linear := transform.Mat3()
	normalTransform := linear.Inv().Transpose()

	return &Instance{
		mesh:            mesh,
		objectToWorld:   transform,
		worldToObject:   worldToObject,
		worldAABB:       mesh.Bounds().Transform(transform),
		normalTransform: normalTransform,
	}, nil
}

// Bounds returns the instance's world-space bounding box.
func (inst *Instance) Bounds() geom.AABB {
	return inst.worldAABB
}

// Centroid returns the center of the instance's world-space bounds.
func (inst *Instance) Centroid() mgl32.Vec3 {
	return inst.worldAABB.Center()
}

func (inst *Instance) toObjectSpace(ray geom.Ray) geom.Ray {
	origin := inst.worldToObject.Mul4x1(ray.Origin.Vec4(1)).Vec3()
	dir := inst.worldToObject.Mul4x1(ray.Dir.Vec4(0)).Vec3()
	return geom.NewRay(origin, dir)
}

// Intersect transports ray into the mesh's object space, intersects there,
// then lifts the normals and distance back to world space (spec.md §4.6).
func (inst *Instance) Intersect(ray geom.Ray) (geom.Hit, bool) {
	objRay := inst.toObjectSpace(ray)

	hit, ok := inst.mesh.Intersect(objRay)
	if !ok {
		return geom.Hit{}, false
	}

	hit.GeometricNormal = inst.normalTransform.Mul3x1(hit.GeometricNormal).Normalize()
	hit.InterpolatedNormal = inst.normalTransform.Mul3x1(hit.InterpolatedNormal).Normalize()

	objectHitPoint := objRay.At(hit.Distance)
	worldHitPoint := inst.objectToWorld.Mul4x1(objectHitPoint.Vec4(1)).Vec3()
	toHit := worldHitPoint.Sub(ray.Origin)
	hit.Distance = toHit.Dot(ray.Dir)

	return hit, true
}

// IntersectAny transports both the ray and the maxDistance endpoint into
// object space before delegating to the mesh (spec.md §4.6).
func (inst *Instance) IntersectAny(ray geom.Ray, maxDistance float32) bool {
	objRay := inst.toObjectSpace(ray)

	worldEndpoint := ray.At(maxDistance)
	objectEndpoint := inst.worldToObject.Mul4x1(worldEndpoint.Vec4(1)).Vec3()
	objectMaxDistance := objectEndpoint.Sub(objRay.Origin).Len()

	return inst.mesh.IntersectAny(objRay, objectMaxDistance)
}
