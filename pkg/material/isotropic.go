package material

import "github.com/mhollis/tracepath/pkg/core"

// Isotropic is the phase function for a participating medium (fog,
// smoke): it scatters uniformly in all directions.
type Isotropic struct {
	Texture core.Texture
}

// NewIsotropic creates an isotropic phase-function material.
func NewIsotropic(color core.Vec3) *Isotropic {
	return &Isotropic{Texture: NewSolidColor(color)}
}

// NewIsotropicTexture creates an isotropic material sampling an arbitrary
// texture for its attenuation.
func NewIsotropicTexture(texture core.Texture) *Isotropic {
	return &Isotropic{Texture: texture}
}

// Scatter always succeeds, picking a uniformly random direction on the
// unit sphere regardless of the incoming direction or hit normal.
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scattered := core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler), rayIn.Time)
	attenuation := i.Texture.Value(hit.U, hit.V, hit.Point)
	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted is zero; a medium's phase function does not emit light.
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo returns the medium's characteristic color.
func (i *Isotropic) Albedo(hit core.HitRecord) core.Vec3 {
	return i.Texture.Value(hit.U, hit.V, hit.Point)
}
