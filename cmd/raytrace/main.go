// Command raytrace loads a JSON scene descriptor, casts one ray per pixel
// through a pinhole camera, and writes the result as a PPM image. There is
// no lighting model here (shading, global illumination and texture
// sampling are all out of scope) — each pixel is coloured from the
// geometric normal of whatever it hit, 0.5*(n+1), just so the CLI has
// something to write.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/raybvh/rt/asset"
	"github.com/gekko3d/raybvh/rt/bvh"
	"github.com/gekko3d/raybvh/rt/camera"
	"github.com/gekko3d/raybvh/rt/image"
	"github.com/gekko3d/raybvh/rt/scene"
)

func main() {
	scenePath := flag.String("scene", "", "path to a JSON scene descriptor")
	outPath := flag.String("out", "render.ppm", "output PPM path")
	previewPath := flag.String("preview", "", "optional downsampled PNG preview path")
	previewWidth := flag.Int("preview-width", 256, "preview width in pixels")
	width := flag.Int("width", 640, "image width in pixels")
	height := flag.Int("height", 480, "image height in pixels")
	fovDegrees := flag.Float64("fov", 60, "perspective field of view in degrees")
	camPos := flag.String("camera-pos", "0,0,-10", "camera position, \"x,y,z\"")
	camLookAt := flag.String("camera-look-at", "0,0,0", "camera look-at point, \"x,y,z\"")
	meshes := flag.String("meshes", "", "comma-separated name=path.obj pairs to register before loading the scene")
	debug := flag.Bool("debug", false, "print extra diagnostics")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "raytrace: -scene is required")
		os.Exit(1)
	}

	cfg := bvh.DefaultConfig()

	registry := asset.NewRegistry()
	if *meshes != "" {
		if err := registerMeshes(registry, cfg, *meshes); err != nil {
			fmt.Fprintf(os.Stderr, "raytrace: %v\n", err)
			os.Exit(1)
		}
	}

	sc, err := asset.LoadSceneJSON(cfg, *scenePath, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: loading scene: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		b := sc.Bounds()
		fmt.Printf("raytrace: loaded %d objects, bounds min=%v max=%v\n", len(sc.Objects), b.Min, b.Max)
	}

	position, err := parseVec3(*camPos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: -camera-pos: %v\n", err)
		os.Exit(1)
	}
	lookAt, err := parseVec3(*camLookAt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: -camera-look-at: %v\n", err)
		os.Exit(1)
	}

	cam, err := camera.New(position, lookAt, camera.NewPerspective(mgl32.DegToRad(float32(*fovDegrees))), *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: %v\n", err)
		os.Exit(1)
	}

	buf, err := image.NewBuffer(*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	render(cam, sc, buf, *debug)
	if *debug {
		fmt.Printf("raytrace: render took %s\n", time.Since(start))
	}

	if err := writeOutputs(buf, *outPath, *previewPath, *previewWidth); err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: %v\n", err)
		os.Exit(1)
	}
}

// render casts one ray per pixel through cam, colouring each hit pixel from
// its geometric normal (0.5*(n+1)) since there is no shading model here —
// see the package doc comment. Misses are left black.
func render(cam *camera.Camera, sc *scene.Scene, buf *image.Buffer, debug bool) {
	width, height := cam.Resolution()
	hits := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ray, err := cam.Ray(row, col)
			if err != nil {
				continue
			}
			hit, ok := sc.Intersect(ray)
			if !ok {
				continue
			}
			hits++
			n := hit.GeometricNormal
			color := mgl32.Vec3{0.5 * (n.X() + 1), 0.5 * (n.Y() + 1), 0.5 * (n.Z() + 1)}
			buf.Set(col, row, color)
		}
	}
	if debug {
		fmt.Printf("raytrace: %d/%d pixels hit\n", hits, width*height)
	}
}

func registerMeshes(registry *asset.Registry, cfg bvh.Config, spec string) error {
	for _, pair := range strings.Split(spec, ",") {
		name, path, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("malformed -meshes entry %q, expected name=path.obj", pair)
		}
		m, err := asset.LoadOBJ(cfg, path)
		if err != nil {
			return fmt.Errorf("loading mesh %q: %w", name, err)
		}
		if _, err := registry.AddMesh(name, m); err != nil {
			return err
		}
	}
	return nil
}

func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected \"x,y,z\", got %q", s)
	}
	var v mgl32.Vec3
	for i, p := range parts {
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%g", &f); err != nil {
			return mgl32.Vec3{}, fmt.Errorf("parsing component %d of %q: %w", i, s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func writeOutputs(buf *image.Buffer, outPath, previewPath string, previewWidth int) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outPath, err)
	}
	defer f.Close()
	if err := buf.WritePPM(f); err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}

	if previewPath == "" {
		return nil
	}
	pf, err := os.Create(previewPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", previewPath, err)
	}
	defer pf.Close()
	if err := buf.WritePNGPreview(pf, previewWidth); err != nil {
		return fmt.Errorf("writing %q: %w", previewPath, err)
	}
	return nil
}
