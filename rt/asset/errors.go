package asset

import "errors"

// ErrDuplicateMesh is returned by Registry.AddMesh when the given name is
// already registered.
var ErrDuplicateMesh = errors.New("asset: mesh name already registered")

// ErrUnknownMesh is returned when a scene descriptor references a mesh
// name that was never loaded into the Registry.
var ErrUnknownMesh = errors.New("asset: unknown mesh name")

// ErrUnknownObjectType is returned by LoadSceneJSON for an object entry
// whose "type" field doesn't match a recognised kind.
var ErrUnknownObjectType = errors.New("asset: unknown scene object type")

// ErrMalformedOBJ is returned by LoadOBJ when the file contains a face
// referencing an out-of-range vertex/normal index, or no faces at all.
var ErrMalformedOBJ = errors.New("asset: malformed obj file")
