package image

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Buffer is a linear-light RGB float accumulation buffer, the shape a
// renderer writes into one pixel at a time before the final tone-mapping
// and encode pass.
type Buffer struct {
	Width, Height int
	pixels        []mgl32.Vec3
}

// NewBuffer allocates a zeroed Buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidResolution
	}
	return &Buffer{Width: width, Height: height, pixels: make([]mgl32.Vec3, width*height)}, nil
}

func (b *Buffer) index(x, y int) (int, error) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.Width, b.Height)
	}
	return y*b.Width + x, nil
}

// Set stores a linear-light colour at (x, y).
func (b *Buffer) Set(x, y int, color mgl32.Vec3) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	b.pixels[i] = color
	return nil
}

// At returns the linear-light colour at (x, y).
func (b *Buffer) At(x, y int) (mgl32.Vec3, error) {
	i, err := b.index(x, y)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return b.pixels[i], nil
}

// reinhard applies the classic c/(1+c) tone curve channel-wise, then a
// 1/2.2 gamma, matching the tone step the original crate's example
// renderers leave to the caller of their raw pixel buffers.
func reinhard(c mgl32.Vec3) mgl32.Vec3 {
	tone := func(v float32) float32 {
		v = v / (1 + v)
		return float32(math.Pow(float64(v), 1.0/2.2))
	}
	return mgl32.Vec3{tone(c.X()), tone(c.Y()), tone(c.Z())}
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
