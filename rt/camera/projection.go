package camera

// Kind distinguishes the two projections a Camera can generate rays
// under, mirroring the original crate's Projection enum.
type Kind int

const (
	// Perspective projects through a field of view.
	Perspective Kind = iota
	// Orthographic projects parallel rays across a fixed view width.
	Orthographic
)

// Projection picks perspective (Value is a field of view in radians) or
// orthographic (Value is the view width) ray generation.
type Projection struct {
	Kind  Kind
	Value float32
}

// NewPerspective builds a perspective Projection from a field of view in
// radians.
func NewPerspective(fovRadians float32) Projection {
	return Projection{Kind: Perspective, Value: fovRadians}
}

// NewOrthographic builds an orthographic Projection from a view width.
func NewOrthographic(width float32) Projection {
	return Projection{Kind: Orthographic, Value: width}
}
