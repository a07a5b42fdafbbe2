package geometry

import (
	"math"

	"github.com/mhollis/tracepath/pkg/core"
)

// ConstantMedium is a fog/smoke volume of uniform density over the
// interior of a boundary hittable. Ray travel through the volume is
// modeled as an exponentially-distributed free path.
type ConstantMedium struct {
	Boundary      core.Hittable
	Density       float64
	PhaseFn       core.Material
	negInvDensity float64
	sampler       core.Sampler
}

// NewConstantMedium wraps boundary in a volume of the given density,
// scattering isotropically with the given phase-function material.
// The sampler drives the free-path distance draw.
func NewConstantMedium(boundary core.Hittable, density float64, phaseFn core.Material, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFn:       phaseFn,
		negInvDensity: -1 / density,
		sampler:       sampler,
	}
}

// Hit finds the ray's entry and exit through the boundary, then samples a
// free-path distance; a hit occurs only if that distance lands inside the
// boundary's interior.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := m.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1))
	if !ok {
		return core.HitRecord{}, false
	}

	t1 := rec1.T
	t2 := rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return core.HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(m.sampler.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	point := ray.At(t)

	rec := core.HitRecord{
		T:         t,
		Point:     point,
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; isotropic scattering ignores it
		FrontFace: true,
		Material:  m.PhaseFn,
	}
	return rec, true
}

// BoundingBox delegates to the boundary.
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
