package asset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/geom"
	"github.com/gekko3d/raybvh/rt/mesh"
	"github.com/gekko3d/raybvh/rt/scene"
)

// sceneObjectJSON is the tagged-union wire shape for one scene entry,
// mirroring the original crate's SerializedSceneObject enum (Sphere,
// Plane, Triangle, Instance) but spelled as a JSON "type" discriminator
// instead of a Rust enum variant, following mod_presets.go's
// EntityData-style JSON-tagged structs.
type sceneObjectJSON struct {
	Type string `json:"type"`

	Center *[3]float32 `json:"center,omitempty"`
	Radius *float32    `json:"radius,omitempty"`

	Point  *[3]float32 `json:"point,omitempty"`
	Normal *[3]float32 `json:"normal,omitempty"`

	Vertices *[3][3]float32 `json:"vertices,omitempty"`
	Normals  *[3][3]float32 `json:"normals,omitempty"`

	Mesh      string               `json:"mesh,omitempty"`
	Transform *SerializedTransform `json:"transform,omitempty"`
}

type sceneFileJSON struct {
	Objects []sceneObjectJSON `json:"objects"`
}

// LoadSceneJSON parses a JSON scene descriptor into a Scene, resolving
// any "instance" entries against meshes already present in registry.
func LoadSceneJSON(cfg bvh.Config, path string, registry *Registry) (*scene.Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: reading %q: %w", path, err)
	}

	var file sceneFileJSON
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("asset: parsing %q: %w", path, err)
	}

	objects := make([]scene.Object, 0, len(file.Objects))
	for i, entry := range file.Objects {
		obj, err := entry.build(registry)
		if err != nil {
			return nil, fmt.Errorf("asset: %q: object %d: %w", path, i, err)
		}
		objects = append(objects, obj)
	}

	return scene.New(cfg, objects)
}

func (o sceneObjectJSON) build(registry *Registry) (scene.Object, error) {
	switch o.Type {
	case "sphere":
		if o.Center == nil || o.Radius == nil {
			return nil, fmt.Errorf("%w: sphere requires center and radius", ErrMalformedOBJ)
		}
		c := *o.Center
		return geom.NewSphere(mgl32.Vec3{c[0], c[1], c[2]}, *o.Radius)

	case "plane":
		if o.Point == nil || o.Normal == nil {
			return nil, fmt.Errorf("%w: plane requires point and normal", ErrMalformedOBJ)
		}
		p, n := *o.Point, *o.Normal
		return geom.NewPlane(mgl32.Vec3{p[0], p[1], p[2]}, mgl32.Vec3{n[0], n[1], n[2]}), nil

	case "triangle":
		if o.Vertices == nil || o.Normals == nil {
			return nil, fmt.Errorf("%w: triangle requires vertices and normals", ErrMalformedOBJ)
		}
		v, n := *o.Vertices, *o.Normals
		tri := geom.NewTriangle(
			mgl32.Vec3{v[0][0], v[0][1], v[0][2]},
			mgl32.Vec3{v[1][0], v[1][1], v[1][2]},
			mgl32.Vec3{v[2][0], v[2][1], v[2][2]},
			mgl32.Vec3{n[0][0], n[0][1], n[0][2]},
			mgl32.Vec3{n[1][0], n[1][1], n[1][2]},
			mgl32.Vec3{n[2][0], n[2][1], n[2][2]},
		)
		return tri, nil

	case "instance":
		m, err := registry.Mesh(o.Mesh)
		if err != nil {
			return nil, err
		}
		transform := mgl32.Ident4()
		if o.Transform != nil {
			transform = o.Transform.Build()
		}
		inst, err := mesh.NewInstance(m, transform)
		if err != nil {
			return nil, err
		}
		return inst, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, o.Type)
	}
}
