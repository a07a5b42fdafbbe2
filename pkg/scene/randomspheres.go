package scene

import (
	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/geometry"
	"github.com/mhollis/tracepath/pkg/material"
	"github.com/mhollis/tracepath/pkg/renderer"
)

// NewRandomSpheres builds the "book cover" scene: a large ground sphere,
// a field of small randomly-placed diffuse/metal/glass spheres (some
// motion-blurred), and three signature large spheres. Scene setup draws
// from a single generator seeded from seed, per the concurrency model's
// carve-out for construction-time randomness.
func NewRandomSpheres(width, height int, seed int64, logger core.Logger) *Scene {
	sampler := core.NewSeededSampler(seed)

	ground := material.NewLambertianTexture(material.NewCheckerColorTexture(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	var shapes []core.Hittable
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Float64()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Float64(),
				0.2,
				float64(b)+0.9*sampler.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(sampler).MultiplyVec(randomColor(sampler))
				mat := material.NewLambertian(albedo)
				endCenter := center.Add(core.NewVec3(0, core.RandomFloatRange(sampler, 0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, endCenter, 0, 1, 0.2, mat))
			case chooseMat < 0.95:
				albedo := randomColorRange(sampler, 0.5, 1)
				fuzz := core.RandomFloatRange(sampler, 0, 0.5)
				mat := material.NewMetal(albedo, fuzz)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, mat))
			default:
				mat := material.NewDielectric(1.5)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, mat))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	world := core.NewBVH(shapes, 0, 1, logger)

	cam := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0.1,
		FocusDist:   10,
		TimeStart:   0,
		TimeEnd:     1,
	})

	return &Scene{
		Hittable:        world,
		Cam:             cam,
		Width:           width,
		Height:          height,
		BackgroundColor: core.NewVec3(0.7, 0.8, 1.0),
	}
}

func randomColor(sampler core.Sampler) core.Vec3 {
	return core.NewVec3(sampler.Float64(), sampler.Float64(), sampler.Float64())
}

func randomColorRange(sampler core.Sampler, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		core.RandomFloatRange(sampler, lo, hi),
		core.RandomFloatRange(sampler, lo, hi),
		core.RandomFloatRange(sampler, lo, hi),
	)
}
