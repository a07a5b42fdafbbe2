package imageio

import (
	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/renderer"
)

// Denoiser is the third-party collaborator that turns a noisy color buffer
// plus its albedo and normal auxiliary passes into a denoised color buffer.
// The core renderer only ever produces the three inputs; denoising itself
// is specified at this interface and left to an external implementation.
type Denoiser interface {
	Denoise(color, albedo, normal *renderer.Buffer) (*renderer.Buffer, error)
}

// PassthroughDenoiser returns the color buffer unchanged. It stands in for
// an external denoiser when none is configured, or as the fallback when one
// fails.
type PassthroughDenoiser struct{}

func (PassthroughDenoiser) Denoise(color, albedo, normal *renderer.Buffer) (*renderer.Buffer, error) {
	return color, nil
}

// Denoise runs den against result's three passes. If den is nil, or if it
// returns an error, the raw color buffer is returned unchanged and the
// failure is logged rather than propagated, per the renderer's fallback
// behavior on denoiser failure.
func Denoise(result renderer.RenderResult, den Denoiser, logger core.Logger) *renderer.Buffer {
	if den == nil {
		return result.Main
	}
	out, err := den.Denoise(result.Main, result.Albedo, result.Normal)
	if err != nil {
		logger.Printf("denoiser failed, using raw render: %v\n", err)
		return result.Main
	}
	return out
}
