package renderer

import (
	"math"

	"github.com/mhollis/tracepath/pkg/core"
)

// Camera generates rays for rendering, supporting a thin-lens depth-of-
// field model and a shutter interval for motion blur.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	timeStart       float64
	timeEnd         float64
}

// CameraConfig collects the parameters needed to construct a Camera.
type CameraConfig struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VFov        float64 // vertical field of view, in degrees
	AspectRatio float64
	Aperture    float64
	FocusDist   float64
	TimeStart   float64
	TimeEnd     float64
}

// NewCamera builds a camera from an orthonormal basis derived from
// LookFrom/LookAt/Up, a vertical FOV, and thin-lens depth-of-field
// parameters.
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(cfg.FocusDist * viewportWidth)
	vertical := v.Multiply(cfg.FocusDist * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		timeStart:       cfg.TimeStart,
		timeEnd:         cfg.TimeEnd,
	}
}

// GetRay generates a ray for screen coordinates (s, t) in [0, 1],
// sampling a lens offset for depth of field and a shutter time uniform
// in [timeStart, timeEnd] for motion blur.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := core.RandomFloatRange(sampler, c.timeStart, c.timeEnd)
	return core.NewRayAtTime(origin, direction, time)
}
