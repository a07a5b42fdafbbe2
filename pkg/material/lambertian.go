package material

import "github.com/mhollis/tracepath/pkg/core"

// Lambertian is a perfectly diffuse material: it scatters toward a
// cosine-weighted random direction around the surface normal.
type Lambertian struct {
	Texture core.Texture
}

// NewLambertian wraps a solid color as a diffuse material's albedo.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Texture: NewSolidColor(albedo)}
}

// NewLambertianTexture creates a diffuse material whose albedo is sampled
// from an arbitrary texture.
func NewLambertianTexture(texture core.Texture) *Lambertian {
	return &Lambertian{Texture: texture}
}

// Scatter picks normal + random-unit-vector as the new direction,
// substituting the bare normal if that sum is near zero (the degenerate
// case where the random vector exactly opposes the normal).
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := l.Texture.Value(hit.U, hit.V, hit.Point)

	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted is zero; Lambertian surfaces do not emit light.
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo returns the surface's diffuse color, used by the albedo pass.
func (l *Lambertian) Albedo(hit core.HitRecord) core.Vec3 {
	return l.Texture.Value(hit.U, hit.V, hit.Point)
}
