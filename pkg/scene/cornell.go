package scene

import (
	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/geometry"
	"github.com/mhollis/tracepath/pkg/material"
	"github.com/mhollis/tracepath/pkg/renderer"
)

// NewCornellBox builds the classic Cornell box: five colored walls, a
// ceiling area light, two boxes (one rotated, one a constant-density
// smoke volume), and a camera looking in from outside the box.
func NewCornellBox(width, height int, logger core.Logger) *Scene {
	const boxSize = 555.0

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(1, 1, 1), 15)

	var shapes []core.Hittable

	shapes = append(shapes,
		geometry.NewRectYZ(0, boxSize, 0, boxSize, boxSize, green), // left wall
		geometry.NewRectYZ(0, boxSize, 0, boxSize, 0, red),         // right wall
		geometry.NewRectXZ(213, 343, 227, 332, boxSize-1, light),   // ceiling light
		geometry.NewRectXZ(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewRectXZ(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewRectXY(0, boxSize, 0, boxSize, boxSize, white), // back wall
	)

	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBoxRotated := geometry.NewRotateY(tallBox, 15)
	tallBoxPlaced := geometry.NewTranslate(tallBoxRotated, core.NewVec3(265, 0, 295))
	shapes = append(shapes, tallBoxPlaced)

	smokeBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	smokeBoxRotated := geometry.NewRotateY(smokeBox, -18)
	smokeBoxPlaced := geometry.NewTranslate(smokeBoxRotated, core.NewVec3(130, 0, 65))
	smoke := geometry.NewConstantMedium(smokeBoxPlaced, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1)), core.NewSeededSampler(7))
	shapes = append(shapes, smoke)

	world := core.NewBVH(shapes, 0, 1, logger)

	cam := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0,
		FocusDist:   800,
		TimeStart:   0,
		TimeEnd:     1,
	})

	return &Scene{
		Hittable:        world,
		Cam:             cam,
		Width:           width,
		Height:          height,
		BackgroundColor: core.Vec3{}, // black, as in the classic Cornell box
	}
}
