package material

import "github.com/mhollis/tracepath/pkg/core"

// DiffuseLight is an emissive material; it never scatters.
type DiffuseLight struct {
	Texture  core.Texture
	Strength float64
}

// NewDiffuseLight creates an emissive material of the given solid color
// and strength (radiant exitance multiplier).
func NewDiffuseLight(color core.Vec3, strength float64) *DiffuseLight {
	return &DiffuseLight{Texture: NewSolidColor(color), Strength: strength}
}

// NewDiffuseLightTexture creates an emissive material whose emission
// pattern is sampled from an arbitrary texture.
func NewDiffuseLightTexture(texture core.Texture, strength float64) *DiffuseLight {
	return &DiffuseLight{Texture: texture, Strength: strength}
}

// Scatter always fails; a light emits but does not reflect.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns Strength * texture.value(u, v, p).
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Texture.Value(u, v, p).Multiply(d.Strength)
}

// Albedo mirrors Emitted for the albedo pass, per spec.
func (d *DiffuseLight) Albedo(hit core.HitRecord) core.Vec3 {
	return d.Emitted(hit.U, hit.V, hit.Point)
}
