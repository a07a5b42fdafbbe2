// Package scene assembles primitives, materials, and a camera into a
// renderer.Scene. Scene construction itself is an external collaborator
// of the renderer's core design — any hittable tree is valid input — but
// this package supplies both hand-built presets and a YAML-driven loader.
package scene

import (
	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/renderer"
)

// Scene bundles a hittable world, a camera, image dimensions, and a flat
// background color into the renderer.Scene interface.
type Scene struct {
	Hittable        core.Hittable
	Cam             *renderer.Camera
	Width, Height   int
	BackgroundColor core.Vec3
}

// World returns the scene's root hittable.
func (s *Scene) World() core.Hittable { return s.Hittable }

// ImageWidth returns the configured image width in pixels.
func (s *Scene) ImageWidth() int { return s.Width }

// ImageHeight returns the configured image height in pixels.
func (s *Scene) ImageHeight() int { return s.Height }

// GetRay delegates to the scene's camera.
func (s *Scene) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	return s.Cam.GetRay(u, v, sampler)
}

// Background returns the scene's flat background color, used by the
// integrator when a ray escapes the world.
func (s *Scene) Background() core.Vec3 {
	return s.BackgroundColor
}
