// Package material implements the core.Material and core.Texture variants:
// Lambertian, Metal, Dielectric, DiffuseLight, Isotropic surfaces, and the
// Solid/Checker/Perlin/Image textures that feed them.
package material

import (
	"math"
	"sync"

	"github.com/mhollis/tracepath/pkg/core"
)

// SolidColor is a texture that returns the same color everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor wraps a constant color as a texture.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value ignores (u, v, p) and returns the solid color.
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two sub-textures in a 3-D grid whose
// cell size is controlled by Scale.
type CheckerTexture struct {
	Even, Odd core.Texture
	Scale     float64
}

// NewCheckerTexture creates a checker pattern from two textures and a
// cell size (scale).
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Scale: scale}
}

// NewCheckerColorTexture is a convenience constructor taking solid colors
// directly instead of sub-textures.
func NewCheckerColorTexture(scale float64, evenColor, oddColor core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(evenColor), NewSolidColor(oddColor))
}

// Value picks Even or Odd based on the parity of the sum of the floored,
// scaled coordinates.
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Floor(p.X/c.Scale) + math.Floor(p.Y/c.Scale) + math.Floor(p.Z/c.Scale)
	if int(sines)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// NoiseTexture renders Perlin turbulence, optionally modulated like marble
// (a sine wave of position warped by turbulence) when Marble is set.
type NoiseTexture struct {
	Noise  *Perlin
	Scale  float64
	Marble bool
}

// NewNoiseTexture creates a turbulence texture at the given spatial scale.
func NewNoiseTexture(scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(), Scale: scale}
}

// NewMarbleTexture creates a marble-veined variant of the noise texture.
func NewMarbleTexture(scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(), Scale: scale, Marble: true}
}

// Value evaluates the turbulence (or marble) field at the scaled point.
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	scaled := p.Multiply(n.Scale)
	if n.Marble {
		intensity := 0.5 * (1 + math.Sin(scaled.Z+10*n.Noise.Turbulence(scaled, 7)))
		return core.NewVec3(1, 1, 1).Multiply(intensity)
	}
	intensity := n.Noise.Turbulence(scaled, 7)
	return core.NewVec3(1, 1, 1).Multiply(intensity)
}

// ImageTexture samples a decoded RGB byte buffer as a texture, clamping
// (u, v) to [0, 1] with v flipped (image row 0 is the top of the image,
// but v=0 is conventionally the bottom of a texture).
type ImageTexture struct {
	Width, Height int
	Data          []byte // tightly packed RGB, row-major, top-to-bottom
	Logger        core.Logger
	Reason        string // why Data is empty, logged the first time this texture is sampled

	warnOnce sync.Once
}

// NewImageTexture wraps a decoded RGB buffer as a texture.
func NewImageTexture(width, height int, data []byte) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Data: data}
}

// NewMissingImageTexture returns a placeholder texture for a failed image
// load: it renders magenta and logs reason once on first sample, per the
// texture-load-failure edge case ("never abort").
func NewMissingImageTexture(logger core.Logger, reason string) *ImageTexture {
	return &ImageTexture{Logger: logger, Reason: reason}
}

// Value clamps (u, v) into range, flips v, and clamps the resulting pixel
// indices to the last row/column before reading the RGB triple.
func (img *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if img.Width <= 0 || img.Height <= 0 || len(img.Data) == 0 {
		img.warnOnce.Do(func() {
			if img.Logger != nil {
				img.Logger.Printf("image texture has no data (%s), rendering magenta placeholder\n", img.Reason)
			}
		})
		return core.NewVec3(1, 0, 1) // magenta sentinel for a missing image, per the texture-load-failure edge case
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}

	const colorScale = 1.0 / 255.0
	offset := (j*img.Width + i) * 3
	return core.NewVec3(
		float64(img.Data[offset])*colorScale,
		float64(img.Data[offset+1])*colorScale,
		float64(img.Data[offset+2])*colorScale,
	)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
