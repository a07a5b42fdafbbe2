package geometry

import (
	"github.com/mhollis/tracepath/pkg/core"
)

// RectAxis identifies which coordinate axis an axis-aligned rectangle's
// plane is constant along.
type RectAxis int

const (
	// RectXY is a rectangle in the XY plane, constant in Z.
	RectXY RectAxis = iota
	// RectXZ is a rectangle in the XZ plane, constant in Y.
	RectXZ
	// RectYZ is a rectangle in the YZ plane, constant in X.
	RectYZ
)

// Rect is an axis-aligned rectangle. A0/A1 and B0/B1 bound the two varying
// axes (X/Y for RectXY, X/Z for RectXZ, Y/Z for RectYZ, matching the
// "Ray Tracing in One Weekend" xy_rect/xz_rect/yz_rect naming); K is
// the fixed-axis coordinate. Displacement, if non-zero,
// offsets K linearly over the shutter interval for a moving wall.
type Rect struct {
	Axis     RectAxis
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material

	// Displacement, when set, is added to K proportional to
	// (ray.Time - TimeStart)/(TimeEnd - TimeStart), clamped to [0,1].
	Displacement       core.Vec3 // only the component matching Axis is used
	TimeStart, TimeEnd float64
}

// NewRectXY creates a rectangle in the XY plane at z=k.
func NewRectXY(x0, x1, y0, y1, k float64, material core.Material) *Rect {
	return &Rect{Axis: RectXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material, TimeStart: 0, TimeEnd: 1}
}

// NewRectXZ creates a rectangle in the XZ plane at y=k.
func NewRectXZ(x0, x1, z0, z1, k float64, material core.Material) *Rect {
	return &Rect{Axis: RectXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material, TimeStart: 0, TimeEnd: 1}
}

// NewRectYZ creates a rectangle in the YZ plane at x=k.
func NewRectYZ(y0, y1, z0, z1, k float64, material core.Material) *Rect {
	return &Rect{Axis: RectYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material, TimeStart: 0, TimeEnd: 1}
}

// displacementAt returns the fixed-axis offset at the given ray time.
func (r *Rect) displacementAt(time float64) float64 {
	var d float64
	switch r.Axis {
	case RectXY:
		d = r.Displacement.Z
	case RectXZ:
		d = r.Displacement.Y
	case RectYZ:
		d = r.Displacement.X
	}
	if d == 0 {
		return 0
	}
	span := r.TimeEnd - r.TimeStart
	if span == 0 {
		return 0
	}
	t := (time - r.TimeStart) / span
	t = max(0, min(1, t))
	return d * t
}

// components splits a point into (fixed-axis coordinate, a, b) for the
// rectangle's plane.
func (r *Rect) components(p core.Vec3) (fixed, a, b float64) {
	switch r.Axis {
	case RectXY:
		return p.Z, p.X, p.Y
	case RectXZ:
		return p.Y, p.X, p.Z
	default: // RectYZ
		return p.X, p.Y, p.Z
	}
}

// outwardNormal returns the rectangle's geometric normal (along its fixed
// axis, positive direction; SetFaceNormal flips it to face the ray).
func (r *Rect) outwardNormal() core.Vec3 {
	switch r.Axis {
	case RectXY:
		return core.NewVec3(0, 0, 1)
	case RectXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// Hit tests if a ray intersects the rectangle's plane within its bounds.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	k := r.K + r.displacementAt(ray.Time)

	rayFixed, rayA, rayB := r.components(ray.Origin)
	dirFixed, dirA, dirB := r.components(ray.Direction)

	if dirFixed == 0 {
		return core.HitRecord{}, false
	}

	t := (k - rayFixed) / dirFixed
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	a := rayA + t*dirA
	b := rayB + t*dirB
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return core.HitRecord{}, false
	}

	u := (a - r.A0) / (r.A1 - r.A0)
	v := (b - r.B0) / (r.B1 - r.B0)

	point := ray.At(t)
	rec := core.HitRecord{T: t, Point: point, U: u, V: v, Material: r.Material}
	rec.SetFaceNormal(ray, r.outwardNormal())
	return rec, true
}

// BoundingBox returns the union of the rectangle's box at shutter-open and
// shutter-close, inflated by a small epsilon on the fixed axis so the BVH
// never degenerates to a zero-volume slab.
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	const epsilon = 1e-4
	k0 := r.K + r.displacementAt(time0)
	k1 := r.K + r.displacementAt(time1)
	kMin, kMax := k0, k1
	if kMin > kMax {
		kMin, kMax = kMax, kMin
	}
	kMin -= epsilon
	kMax += epsilon

	switch r.Axis {
	case RectXY:
		return core.NewAABB(core.NewVec3(r.A0, r.B0, kMin), core.NewVec3(r.A1, r.B1, kMax)), true
	case RectXZ:
		return core.NewAABB(core.NewVec3(r.A0, kMin, r.B0), core.NewVec3(r.A1, kMax, r.B1)), true
	default:
		return core.NewAABB(core.NewVec3(kMin, r.A0, r.B0), core.NewVec3(kMax, r.A1, r.B1)), true
	}
}
