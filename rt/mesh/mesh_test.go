package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/geom"
	"github.com/gekko3d/raybvh/rt/mesh"
)

func upTriangle() geom.Triangle {
	up := mgl32.Vec3{0, 0, 1}
	return geom.NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, up, up, up)
}

func TestMeshIntersectReportsTriangleIndex(t *testing.T) {
	m, err := mesh.NewMesh(bvh.DefaultConfig(), []geom.Triangle{upTriangle()})
	require.NoError(t, err)

	ray := geom.NewRay(mgl32.Vec3{0.3, 0.3, 1}, mgl32.Vec3{0, 0, -1})
	hit, ok := m.Intersect(ray)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)
	assert.InDelta(t, 1.0, hit.Distance, 1e-4)
}

func TestMeshRejectsEmptyTriangleSet(t *testing.T) {
	_, err := mesh.NewMesh(bvh.DefaultConfig(), nil)
	require.ErrorIs(t, err, mesh.ErrNoTriangles)
}

func TestFromVerticesNormalsFacesRejectsOutOfRangeIndex(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	normals := []mgl32.Vec3{{0, 0, 1}}
	faces := [][3]mesh.FaceVertex{
		{{VertexIndex: 0, NormalIndex: 0}, {VertexIndex: 1, NormalIndex: 0}, {VertexIndex: 5, NormalIndex: 0}},
	}

	_, err := mesh.FromVerticesNormalsFaces(bvh.DefaultConfig(), vertices, normals, faces)
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestFromVerticesNormalsFacesBuildsMesh(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	normals := []mgl32.Vec3{{0, 0, 1}}
	faces := [][3]mesh.FaceVertex{
		{{VertexIndex: 0, NormalIndex: 0}, {VertexIndex: 1, NormalIndex: 0}, {VertexIndex: 2, NormalIndex: 0}},
	}

	m, err := mesh.FromVerticesNormalsFaces(bvh.DefaultConfig(), vertices, normals, faces)
	require.NoError(t, err)
	assert.Len(t, m.Triangles, 1)
}
