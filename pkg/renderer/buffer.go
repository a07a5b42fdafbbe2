package renderer

import "github.com/mhollis/tracepath/pkg/core"

// Buffer is a linear-color image accumulator owned by a single worker.
// Pixels are stored row-major, top-to-bottom, left-to-right.
type Buffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// Set stores the color at (x, y).
func (b *Buffer) Set(x, y int, color core.Vec3) {
	b.Pixels[y*b.Width+x] = color
}

// At returns the color at (x, y).
func (b *Buffer) At(x, y int) core.Vec3 {
	return b.Pixels[y*b.Width+x]
}

// MergeAverage returns the new buffer whose pixels are the componentwise
// arithmetic mean of the given buffers. All buffers must share the same
// dimensions; this is a programmer invariant, not validated at runtime,
// since every worker buffer is allocated from the same Width/Height.
func MergeAverage(buffers []*Buffer) *Buffer {
	if len(buffers) == 0 {
		return nil
	}
	width, height := buffers[0].Width, buffers[0].Height
	merged := NewBuffer(width, height)

	inv := 1.0 / float64(len(buffers))
	for i := range merged.Pixels {
		var sum core.Vec3
		for _, b := range buffers {
			sum = sum.Add(b.Pixels[i])
		}
		merged.Pixels[i] = sum.Multiply(inv)
	}
	return merged
}

// ToRGBBytes gamma-corrects and quantizes the buffer into a tightly
// packed 8-bit RGB byte slice, row-major top-to-bottom.
func (b *Buffer) ToRGBBytes() []byte {
	out := make([]byte, 0, b.Width*b.Height*3)
	for _, c := range b.Pixels {
		g := c.GammaCorrect(2.0).Clamp(0, 1)
		out = append(out, byte(g.X*255.999), byte(g.Y*255.999), byte(g.Z*255.999))
	}
	return out
}
