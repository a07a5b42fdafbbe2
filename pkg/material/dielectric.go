package material

import (
	"math"

	"github.com/mhollis/tracepath/pkg/core"
)

// Dielectric is a clear refractive material (glass, water) with
// wavelength-independent (white) attenuation.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a dielectric material of the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter reflects or refracts the incoming ray, choosing between the two
// by Schlick's approximation to the Fresnel reflectance, and always
// reflecting under total internal reflection.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	refractionRatio := d.RefractionIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Reflectance(cosTheta, refractionRatio) > sampler.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := core.NewVec3(1, 1, 1)

	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted is zero; Dielectric surfaces do not emit light.
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo is white; glass has no intrinsic surface color.
func (d *Dielectric) Albedo(hit core.HitRecord) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}
