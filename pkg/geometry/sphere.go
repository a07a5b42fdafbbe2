// Package geometry implements the primitive, transform, and volumetric
// Hittable variants: spheres, axis-aligned rectangles, boxes, translate
// and rotate decorators, triangles, and constant-density media.
package geometry

import (
	"math"

	"github.com/mhollis/tracepath/pkg/core"
)

// Sphere represents a sphere, optionally moving linearly between
// CenterStart (at TimeStart) and CenterEnd (at TimeEnd) for motion blur.
// A stationary sphere sets CenterStart == CenterEnd.
type Sphere struct {
	CenterStart, CenterEnd core.Vec3
	TimeStart, TimeEnd     float64
	Radius                 float64
	Material               core.Material
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		CenterStart: center,
		CenterEnd:   center,
		TimeStart:   0,
		TimeEnd:     1,
		Radius:      radius,
		Material:    material,
	}
}

// NewMovingSphere creates a sphere whose center interpolates linearly from
// centerStart at timeStart to centerEnd at timeEnd. Per spec's open
// question, a zero-width shutter (timeStart == timeEnd) is guarded against
// division by zero and treated as a stationary sphere at centerStart.
func NewMovingSphere(centerStart, centerEnd core.Vec3, timeStart, timeEnd, radius float64, material core.Material) *Sphere {
	return &Sphere{
		CenterStart: centerStart,
		CenterEnd:   centerEnd,
		TimeStart:   timeStart,
		TimeEnd:     timeEnd,
		Radius:      radius,
		Material:    material,
	}
}

// Center returns the sphere's center at the given ray time.
func (s *Sphere) Center(time float64) core.Vec3 {
	if s.TimeEnd == s.TimeStart {
		return s.CenterStart
	}
	t := (time - s.TimeStart) / (s.TimeEnd - s.TimeStart)
	return s.CenterStart.Lerp(s.CenterEnd, t)
}

// Hit tests if a ray intersects the sphere over [tMin, tMax].
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{T: root, Point: point, U: u, V: v, Material: s.Material}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// sphereUV computes (u, v) surface parameters from a point on the unit
// sphere: u = (atan2(-z, x) + pi) / 2pi, v = acos(-y) / pi.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the union of the radius-r boxes at the shutter open
// and close times, so a moving sphere's box encloses its whole sweep.
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center(time0).Subtract(r), s.Center(time0).Add(r))
	box1 := core.NewAABB(s.Center(time1).Subtract(r), s.Center(time1).Add(r))
	return box0.Union(box1), true
}
