package material

import "github.com/mhollis/tracepath/pkg/core"

// Metal is a specular reflector with an optional fuzz factor that blurs
// the reflection direction.
type Metal struct {
	Color core.Vec3
	Fuzz  float64 // 0 = perfect mirror, 1 = maximally fuzzy
}

// NewMetal creates a metal material, clamping fuzz into [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Color: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming direction about the normal, perturbed by
// fuzz * random-in-unit-sphere. The scatter fails if the perturbed
// direction dips below the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	ok := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{Attenuation: m.Color, Scattered: scattered}, ok
}

// Emitted is zero; Metal surfaces do not emit light.
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo returns the metal's characteristic color.
func (m *Metal) Albedo(hit core.HitRecord) core.Vec3 {
	return m.Color
}
