package integrator

import (
	"testing"

	"github.com/mhollis/tracepath/pkg/core"
)

type missWorld struct{}

func (missWorld) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return core.HitRecord{}, false
}
func (missWorld) BoundingBox(t0, t1 float64) (core.AABB, bool) { return core.AABB{}, false }

type constSampler struct{ v float64 }

func (c constSampler) Float64() float64 { return c.v }

type emissiveMaterial struct{ color core.Vec3 }

func (e emissiveMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
func (e emissiveMaterial) Emitted(u, v float64, p core.Vec3) core.Vec3 { return e.color }
func (e emissiveMaterial) Albedo(hit core.HitRecord) core.Vec3         { return e.color }

type scatteringMaterial struct {
	attenuation core.Vec3
}

func (s scatteringMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: s.attenuation,
		Scattered:   core.NewRay(hit.Point, hit.Normal),
	}, true
}
func (s scatteringMaterial) Emitted(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }
func (s scatteringMaterial) Albedo(hit core.HitRecord) core.Vec3        { return s.attenuation }

type hitOnceWorld struct {
	material core.Material
	hit      bool
}

func (w *hitOnceWorld) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if w.hit {
		return core.HitRecord{}, false
	}
	w.hit = true
	return core.HitRecord{
		T:        1.0,
		Point:    ray.At(1.0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: w.material,
	}, true
}
func (w *hitOnceWorld) BoundingBox(t0, t1 float64) (core.AABB, bool) { return core.AABB{}, false }

func TestRayColorDepthZeroIsBlack(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := RayColor(ray, core.NewVec3(1, 1, 1), missWorld{}, constSampler{v: 0.5}, 0)
	if !got.Equals(core.Vec3{}) {
		t.Errorf("RayColor with depth=0 = %v, want black", got)
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	background := core.NewVec3(0.5, 0.7, 1.0)
	got := RayColor(ray, background, missWorld{}, constSampler{v: 0.5}, 10)
	if !got.Equals(background) {
		t.Errorf("RayColor on miss = %v, want background %v", got, background)
	}
}

func TestRayColorEmissiveMaterialStopsRecursion(t *testing.T) {
	world := &hitOnceWorld{material: emissiveMaterial{color: core.NewVec3(4, 4, 4)}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := RayColor(ray, core.Vec3{}, world, constSampler{v: 0.5}, 10)
	if !got.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("RayColor on emissive hit = %v, want (4,4,4)", got)
	}
}

func TestAlbedoColorReturnsSurfaceAlbedo(t *testing.T) {
	world := &hitOnceWorld{material: scatteringMaterial{attenuation: core.NewVec3(0.2, 0.3, 0.4)}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := AlbedoColor(ray, core.NewVec3(1, 1, 1), world)
	if !got.Equals(core.NewVec3(0.2, 0.3, 0.4)) {
		t.Errorf("AlbedoColor = %v, want (0.2,0.3,0.4)", got)
	}
}

func TestNormalColorMapsUnitNormalToZeroOneRange(t *testing.T) {
	world := &hitOnceWorld{material: scatteringMaterial{attenuation: core.NewVec3(1, 1, 1)}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := NormalColor(ray, world)
	want := core.NewVec3(0.5, 1.0, 0.5)
	if !got.Equals(want) {
		t.Errorf("NormalColor = %v, want %v", got, want)
	}
}

func TestNormalColorMissIsBlack(t *testing.T) {
	got := NormalColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), missWorld{})
	if !got.Equals(core.Vec3{}) {
		t.Errorf("NormalColor on miss = %v, want black", got)
	}
}
