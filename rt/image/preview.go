package image

import (
	stdimage "image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// toRGBA tone-maps the whole buffer into a standard library image.RGBA,
// the shape both png.Encode and golang.org/x/image/draw operate on.
func (b *Buffer) toRGBA() *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			mapped := reinhard(b.pixels[y*b.Width+x])
			img.Set(x, y, color.RGBA{
				R: clampByte(mapped.X()),
				G: clampByte(mapped.Y()),
				B: clampByte(mapped.Z()),
				A: 255,
			})
		}
	}
	return img
}

// WritePNGPreview tone-maps and downsamples the buffer to at most
// maxWidth pixels wide (preserving aspect ratio) and encodes it as a PNG.
// A maxWidth that is not positive, or not below the buffer's width, encodes
// the buffer at full size. cmd/raytrace calls it once, after rendering.
func (b *Buffer) WritePNGPreview(w io.Writer, maxWidth int) error {
	full := b.toRGBA()
	if maxWidth <= 0 || maxWidth >= b.Width {
		return png.Encode(w, full)
	}

	scale := float64(maxWidth) / float64(b.Width)
	previewHeight := int(float64(b.Height)*scale + 0.5)
	if previewHeight < 1 {
		previewHeight = 1
	}

	preview := stdimage.NewRGBA(stdimage.Rect(0, 0, maxWidth, previewHeight))
	draw.ApproxBiLinear.Scale(preview, preview.Bounds(), full, full.Bounds(), draw.Over, nil)

	return png.Encode(w, preview)
}
