package image

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM writes the buffer as a binary (P6) PPM, applying Reinhard tone
// mapping to each pixel first. PPM is what the original crate's example
// renderers wrote directly from their raw pixel buffers.
func (b *Buffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Width, b.Height); err != nil {
		return fmt.Errorf("image: writing ppm header: %w", err)
	}

	row := make([]byte, b.Width*3)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			mapped := reinhard(b.pixels[y*b.Width+x])
			row[x*3+0] = clampByte(mapped.X())
			row[x*3+1] = clampByte(mapped.Y())
			row[x*3+2] = clampByte(mapped.Z())
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("image: writing ppm row %d: %w", y, err)
		}
	}

	return bw.Flush()
}
