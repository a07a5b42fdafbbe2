package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord is populated by a Hittable's Hit method with everything a
// material or integrator needs to evaluate an intersection.
type HitRecord struct {
	T         float64  // Parametric distance along the ray
	Point     Vec3     // Point of intersection, ray.At(T)
	Normal    Vec3     // Unit surface normal, always oriented against the incoming ray
	FrontFace bool     // Whether the ray approached the outward face
	U, V      float64  // Surface parameters in [0,1] (0 if the primitive has no natural UV)
	Material  Material // The material that generated the hit
}

// SetFaceNormal orients Normal against the ray direction and records
// whether the outward face was hit, per spec: dot(ray.Direction, Normal)
// must end up <= 0 on every successful hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the polymorphic capability set shared by every primitive,
// transform, list, and acceleration structure: anything that can be
// intersected by a ray and report a bounding box over a shutter interval.
type Hittable interface {
	// Hit tests for an intersection with the ray over the parametric
	// interval [tMin, tMax].
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)

	// BoundingBox returns the smallest AABB enclosing the hittable over the
	// shutter interval [time0, time1]. ok is false for hittables with
	// unbounded extent (e.g. an unbounded ConstantMedium boundary); a BVH
	// must treat such a child as never contributing a box of its own.
	BoundingBox(time0, time1 float64) (box AABB, ok bool)
}

// ScatterResult is what a Material.Scatter call produces: the outgoing
// ray and how much of the incoming light it carries.
type ScatterResult struct {
	Attenuation Vec3
	Scattered   Ray
}

// Material is the polymorphic capability set over surface shaders:
// lambertian, metal, dielectric, diffuse light, and isotropic volume
// phase functions.
type Material interface {
	// Scatter produces an attenuation and a scattered ray, or ok=false if
	// the material only absorbs or emits (no further bounce).
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (result ScatterResult, ok bool)

	// Emitted returns the light emitted at surface parameters (u, v, p).
	// Zero for every material except DiffuseLight.
	Emitted(u, v float64, p Vec3) Vec3

	// Albedo returns the material's characteristic surface color,
	// independent of illumination, for the auxiliary albedo denoiser pass.
	Albedo(hit HitRecord) Vec3
}

// Texture is the polymorphic capability set over spatially varying color
// sources: solid, checker, Perlin turbulence, and image lookup.
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}
