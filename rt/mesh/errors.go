package mesh

import "errors"

// ErrNoTriangles is returned when a Mesh is built from zero triangles.
var ErrNoTriangles = errors.New("mesh: no triangles")

// ErrIndexOutOfRange is returned when a face references a vertex or normal
// index outside the parsed arrays.
var ErrIndexOutOfRange = errors.New("mesh: face index out of range")

// ErrNonInvertible is returned by NewInstance when the supplied transform
// has no inverse.
var ErrNonInvertible = errors.New("mesh: instance transform is not invertible")
