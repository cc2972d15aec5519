package asset

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gekko3d/raybvh/rt/mesh"
)

// MeshHandle is a unique id minted for each mesh added to a Registry,
// mirroring the teacher's AssetId(uuid.NewString()) pattern
// (mod_assets.go's AssetServer.LoadMesh).
type MeshHandle string

type registeredMesh struct {
	handle MeshHandle
	mesh   *mesh.Mesh
}

// Registry is a named collection of loaded Meshes, grounded on the
// original crate's scene::Assets builder: adding a mesh under a name that
// is already taken is an error rather than a silent overwrite.
type Registry struct {
	byName map[string]registeredMesh
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]registeredMesh)}
}

// AddMesh registers m under name, minting a new MeshHandle for it.
func (r *Registry) AddMesh(name string, m *mesh.Mesh) (MeshHandle, error) {
	if _, exists := r.byName[name]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateMesh, name)
	}
	handle := MeshHandle(uuid.NewString())
	r.byName[name] = registeredMesh{handle: handle, mesh: m}
	return handle, nil
}

// Mesh looks up a previously registered mesh by name.
func (r *Registry) Mesh(name string) (*mesh.Mesh, error) {
	entry, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMesh, name)
	}
	return entry.mesh, nil
}

// Handle looks up the handle minted for a previously registered mesh name.
func (r *Registry) Handle(name string) (MeshHandle, error) {
	entry, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMesh, name)
	}
	return entry.handle, nil
}
