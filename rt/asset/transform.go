package asset

import "github.com/go-gl/mathgl/mgl32"

// SerializedTransform is the JSON shape of an optional instance placement,
// matching the original crate's SerializedTransform: translation and
// rotation default to identity, scale defaults to 1, and the three are
// composed as Translation * Rotation * Scale.
type SerializedTransform struct {
	Translation *[3]float32 `json:"translation,omitempty"`
	// Rotation is Euler angles in degrees (roll, pitch, yaw), applied about
	// the fixed axes X then Y then Z, i.e. the rotation matrix is Rz*Ry*Rx.
	Rotation *[3]float32 `json:"rotation,omitempty"`
	Scale    *float32    `json:"scale,omitempty"`
}

// Build composes the transform into a single Mat4.
func (t SerializedTransform) Build() mgl32.Mat4 {
	translate := mgl32.Ident4()
	if t.Translation != nil {
		tr := *t.Translation
		translate = mgl32.Translate3D(tr[0], tr[1], tr[2])
	}

	rotate := mgl32.Ident4()
	if t.Rotation != nil {
		e := *t.Rotation
		rx := mgl32.HomogRotate3DX(mgl32.DegToRad(e[0]))
		ry := mgl32.HomogRotate3DY(mgl32.DegToRad(e[1]))
		rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(e[2]))
		rotate = rz.Mul4(ry).Mul4(rx)
	}

	scale := mgl32.Ident4()
	if t.Scale != nil {
		s := *t.Scale
		scale = mgl32.Scale3D(s, s, s)
	}

	return translate.Mul4(rotate).Mul4(scale)
}
