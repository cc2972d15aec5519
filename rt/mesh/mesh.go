package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/geom"
)

// Mesh owns a sequence of triangles and the BVH built over them. Once
// built it is read-only: Instance holds a non-owning reference to it and
// must not outlive it.
type Mesh struct {
	Triangles []geom.Triangle

	tree   *bvh.BVH
	bounds geom.AABB
}

// FaceVertex names the (already 0-based) vertex and normal index a face
// corner uses. A mesh loader is responsible for converting a file format's
// 1-based indices before calling FromVerticesNormalsFaces.
type FaceVertex struct {
	VertexIndex int
	NormalIndex int
}

// NewMesh builds a Mesh directly from precomputed triangles.
func NewMesh(cfg bvh.Config, triangles []geom.Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrNoTriangles
	}
	tree, err := bvh.Build(cfg, triangles)
	if err != nil {
		return nil, fmt.Errorf("mesh: building bvh: %w", err)
	}
	return &Mesh{Triangles: triangles, tree: tree, bounds: tree.Nodes[0].Box}, nil
}

// FromVerticesNormalsFaces builds a Mesh from a shared vertex/normal pool
// and a list of triangular faces, each face naming three (vertex, normal)
// index pairs. This is the shape a Wavefront .obj loader produces.
func FromVerticesNormalsFaces(cfg bvh.Config, vertices, normals []mgl32.Vec3, faces [][3]FaceVertex) (*Mesh, error) {
	if len(faces) == 0 {
		return nil, ErrNoTriangles
	}

	triangles := make([]geom.Triangle, len(faces))
	for i, face := range faces {
		var v [3]mgl32.Vec3
		var n [3]mgl32.Vec3
		for c := 0; c < 3; c++ {
			fv := face[c]
			if fv.VertexIndex < 0 || fv.VertexIndex >= len(vertices) {
				return nil, fmt.Errorf("mesh: face %d corner %d: %w (vertex index %d, have %d vertices)",
					i, c, ErrIndexOutOfRange, fv.VertexIndex, len(vertices))
			}
			if fv.NormalIndex < 0 || fv.NormalIndex >= len(normals) {
				return nil, fmt.Errorf("mesh: face %d corner %d: %w (normal index %d, have %d normals)",
					i, c, ErrIndexOutOfRange, fv.NormalIndex, len(normals))
			}
			v[c] = vertices[fv.VertexIndex]
			n[c] = normals[fv.NormalIndex]
		}
		triangles[i] = geom.NewTriangle(v[0], v[1], v[2], n[0], n[1], n[2])
	}

	return NewMesh(cfg, triangles)
}

// Bounds returns the mesh's overall (object-space) bounding box.
func (m *Mesh) Bounds() geom.AABB {
	return m.bounds
}

// Centroid returns the center of the mesh's bounding box.
func (m *Mesh) Centroid() mgl32.Vec3 {
	return m.bounds.Center()
}

// Intersect delegates to the internal BVH over m.Triangles and reports the
// winning triangle's index.
func (m *Mesh) Intersect(ray geom.Ray) (geom.Hit, bool) {
	idx, hit, ok := bvh.Intersect(m.tree, ray, m.Triangles)
	if !ok {
		return geom.Hit{}, false
	}
	hit.Index = idx
	return hit, true
}

// IntersectAny delegates to the internal BVH's shadow-ray query.
func (m *Mesh) IntersectAny(ray geom.Ray, maxDistance float32) bool {
	return bvh.IntersectAny(m.tree, ray, m.Triangles, maxDistance)
}
