// Package integrator implements the recursive path-tracing rayColor
// routine and its albedo/normal companion passes.
package integrator

import "github.com/mhollis/tracepath/pkg/core"

const shadowEpsilon = 1e-3

// RayColor recursively traces ray through world, accumulating emitted
// light and attenuated indirect light up to depth bounces. It returns
// background when the ray escapes the scene.
func RayColor(ray core.Ray, background core.Vec3, world core.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, shadowEpsilon, 1e18)
	if !ok {
		return background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	result, ok := hit.Material.Scatter(ray, hit, sampler)
	if !ok {
		return emitted
	}

	indirect := RayColor(result.Scattered, background, world, sampler, depth-1)
	return emitted.Add(result.Attenuation.MultiplyVec(indirect))
}

// AlbedoColor returns the hit surface's characteristic color, or
// background on a miss. It feeds the denoiser's albedo guide buffer.
func AlbedoColor(ray core.Ray, background core.Vec3, world core.Hittable) core.Vec3 {
	hit, ok := world.Hit(ray, shadowEpsilon, 1e18)
	if !ok {
		return background
	}
	return hit.Material.Albedo(hit)
}

// NormalColor returns 0.5*(n + (1,1,1)) on a hit (mapping [-1,1] into
// [0,1] for display), or black on a miss.
func NormalColor(ray core.Ray, world core.Hittable) core.Vec3 {
	hit, ok := world.Hit(ray, shadowEpsilon, 1e18)
	if !ok {
		return core.Vec3{}
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
