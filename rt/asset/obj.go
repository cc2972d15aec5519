package asset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/mesh"
)

// LoadOBJ parses a Wavefront .obj file into a Mesh. It recognises v/vn/f
// lines only (no materials, groups or texture coordinates — those are
// outside this repo's scope), fan-triangulates faces with more than three
// vertices, and synthesizes a flat per-face normal when a face's corners
// omit vn indices, the same fallback the original crate's mesh loader
// performs. Grounded on the pack's hand-rolled OBJ parsers
// (mrigankad-gorenderengine/io/obj.go, mirstar13-3d-graphics/obj_loader.go) —
// no third-party OBJ parsing library appears anywhere in the retrieved pack.
func LoadOBJ(cfg bvh.Config, path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: opening %q: %w", path, err)
	}
	defer f.Close()

	var vertices []mgl32.Vec3
	var normals []mgl32.Vec3
	var faces [][3]mesh.FaceVertex

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("asset: %s:%d: %w", path, lineNo, err)
			}
			vertices = append(vertices, v)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("asset: %s:%d: %w", path, lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			corners := make([]mesh.FaceVertex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				fv, err := parseFaceVertex(tok, len(vertices), len(normals))
				if err != nil {
					return nil, fmt.Errorf("asset: %s:%d: %w", path, lineNo, err)
				}
				corners = append(corners, fv)
			}
			if len(corners) < 3 {
				return nil, fmt.Errorf("asset: %s:%d: %w: face has fewer than 3 vertices", path, lineNo, ErrMalformedOBJ)
			}

			// Fan triangulation, matching the pack's obj loaders.
			for i := 2; i < len(corners); i++ {
				tri := [3]mesh.FaceVertex{corners[0], corners[i-1], corners[i]}
				faces = append(faces, synthesizeMissingNormal(tri, vertices, &normals))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("asset: reading %q: %w", path, err)
	}

	if len(faces) == 0 {
		return nil, fmt.Errorf("asset: %q: %w: no faces found", path, ErrMalformedOBJ)
	}

	return mesh.FromVerticesNormalsFaces(cfg, vertices, normals, faces)
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: expected 3 components, got %d", ErrMalformedOBJ, len(fields))
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("%w: %v", ErrMalformedOBJ, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// normalIndexMissing marks a FaceVertex whose vn index was absent from
// the file; synthesizeMissingNormal replaces it with a freshly appended
// flat face normal once all three corners of a triangle are known.
const normalIndexMissing = -1

// parseFaceVertex parses one "v", "v/vt", "v//vn" or "v/vt/vn" token,
// converting the file's 1-based (or negative, relative-to-end) indices to
// 0-based. The vt slot, if present, is ignored.
func parseFaceVertex(tok string, numVertices, numNormals int) (mesh.FaceVertex, error) {
	parts := strings.Split(tok, "/")
	vIdx, err := parseOBJIndex(parts[0], numVertices)
	if err != nil {
		return mesh.FaceVertex{}, err
	}

	nIdx := normalIndexMissing
	if len(parts) == 3 && parts[2] != "" {
		nIdx, err = parseOBJIndex(parts[2], numNormals)
		if err != nil {
			return mesh.FaceVertex{}, err
		}
	}

	return mesh.FaceVertex{VertexIndex: vIdx, NormalIndex: nIdx}, nil
}

func parseOBJIndex(s string, count int) (int, error) {
	raw, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedOBJ, err)
	}

	var idx int
	switch {
	case raw > 0:
		idx = raw - 1
	case raw < 0:
		idx = count + raw
	default:
		return 0, fmt.Errorf("%w: index 0 is not valid in an obj file", ErrMalformedOBJ)
	}

	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: index %d out of range (have %d)", ErrMalformedOBJ, raw, count)
	}
	return idx, nil
}

func synthesizeMissingNormal(tri [3]mesh.FaceVertex, vertices []mgl32.Vec3, normals *[]mgl32.Vec3) [3]mesh.FaceVertex {
	missing := false
	for _, c := range tri {
		if c.NormalIndex == normalIndexMissing {
			missing = true
			break
		}
	}
	if !missing {
		return tri
	}

	v0 := vertices[tri[0].VertexIndex]
	v1 := vertices[tri[1].VertexIndex]
	v2 := vertices[tri[2].VertexIndex]
	flat := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

	idx := len(*normals)
	*normals = append(*normals, flat)
	for i := range tri {
		tri[i].NormalIndex = idx
	}
	return tri
}
