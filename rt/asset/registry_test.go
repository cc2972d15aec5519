package asset_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/raybvh/rt/asset"
	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/geom"
	"github.com/gekko3d/raybvh/rt/mesh"
)

func singleTriangleMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	up := mgl32.Vec3{0, 0, 1}
	tri := geom.NewTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, up, up, up)
	m, err := mesh.NewMesh(bvh.DefaultConfig(), []geom.Triangle{tri})
	require.NoError(t, err)
	return m
}

func TestRegistryAddAndLookup(t *testing.T) {
	reg := asset.NewRegistry()
	m := singleTriangleMesh(t)

	handle, err := reg.AddMesh("floor", m)
	require.NoError(t, err)
	assert.NotEmpty(t, handle)

	got, err := reg.Mesh("floor")
	require.NoError(t, err)
	assert.Same(t, m, got)

	gotHandle, err := reg.Handle("floor")
	require.NoError(t, err)
	assert.Equal(t, handle, gotHandle)
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	reg := asset.NewRegistry()
	m := singleTriangleMesh(t)

	_, err := reg.AddMesh("floor", m)
	require.NoError(t, err)

	_, err = reg.AddMesh("floor", m)
	require.ErrorIs(t, err, asset.ErrDuplicateMesh)
}

func TestRegistryRejectsUnknownName(t *testing.T) {
	reg := asset.NewRegistry()
	_, err := reg.Mesh("missing")
	require.ErrorIs(t, err, asset.ErrUnknownMesh)
}
