package geometry

import (
	"math"

	"github.com/mhollis/tracepath/pkg/core"
)

// Rotate is a decorator that rotates a child hittable about the X, Y, and Z
// principal axes by angles given in degrees (applied in X, then Y, then Z
// order). It precomputes sin/cos for each axis so Hit can transform the ray
// into the child's local frame by the reverse rotation R^-1, intersect the
// child, then transform the resulting hit back into world space by the
// forward rotation R. R^-1 undoes the axes in the opposite order (Z, then
// Y, then X) with negated angles, so it is the true matrix inverse of R and
// Rotate composed with its own reverse is the identity on intersection t.
type Rotate struct {
	Child core.Hittable

	sinX, cosX float64
	sinY, cosY float64
	sinZ, cosZ float64

	hasBox bool
	bbox   core.AABB
}

// NewRotate wraps child, rotating it by the given Euler angles in degrees
// about the X, Y, and Z axes.
func NewRotate(child core.Hittable, angleXDegrees, angleYDegrees, angleZDegrees float64) *Rotate {
	toRadians := func(deg float64) float64 { return deg * math.Pi / 180 }

	thetaX := toRadians(angleXDegrees)
	thetaY := toRadians(angleYDegrees)
	thetaZ := toRadians(angleZDegrees)

	r := &Rotate{
		Child: child,
		sinX:  math.Sin(thetaX), cosX: math.Cos(thetaX),
		sinY: math.Sin(thetaY), cosY: math.Cos(thetaY),
		sinZ: math.Sin(thetaZ), cosZ: math.Cos(thetaZ),
	}

	box, ok := child.BoundingBox(0, 1)
	if !ok {
		return r
	}
	r.hasBox = true

	// Transform all eight corners of the child's box, then take the
	// componentwise min/max to form the enclosing AABB.
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					lerpCorner(box.Min.X, box.Max.X, i),
					lerpCorner(box.Min.Y, box.Max.Y, j),
					lerpCorner(box.Min.Z, box.Max.Z, k),
				)
				world := r.toWorld(corner)

				min.X = math.Min(min.X, world.X)
				min.Y = math.Min(min.Y, world.Y)
				min.Z = math.Min(min.Z, world.Z)
				max.X = math.Max(max.X, world.X)
				max.Y = math.Max(max.Y, world.Y)
				max.Z = math.Max(max.Z, world.Z)
			}
		}
	}

	r.bbox = core.NewAABB(min, max)
	return r
}

// NewRotateY is a convenience constructor for the common Y-axis-only case.
func NewRotateY(child core.Hittable, angleDegrees float64) *Rotate {
	return NewRotate(child, 0, angleDegrees, 0)
}

func lerpCorner(lo, hi float64, bit int) float64 {
	if bit == 0 {
		return lo
	}
	return hi
}

func rotateX(v core.Vec3, sinTheta, cosTheta, sign float64) core.Vec3 {
	s := sign * sinTheta
	return core.NewVec3(
		v.X,
		cosTheta*v.Y-s*v.Z,
		s*v.Y+cosTheta*v.Z,
	)
}

func rotateY(v core.Vec3, sinTheta, cosTheta, sign float64) core.Vec3 {
	s := sign * sinTheta
	return core.NewVec3(
		cosTheta*v.X+s*v.Z,
		v.Y,
		-s*v.X+cosTheta*v.Z,
	)
}

func rotateZ(v core.Vec3, sinTheta, cosTheta, sign float64) core.Vec3 {
	s := sign * sinTheta
	return core.NewVec3(
		cosTheta*v.X-s*v.Y,
		s*v.X+cosTheta*v.Y,
		v.Z,
	)
}

// toLocal applies R^-1: undo Z, then Y, then X, each with a negated angle.
func (r *Rotate) toLocal(v core.Vec3) core.Vec3 {
	v = rotateZ(v, r.sinZ, r.cosZ, -1)
	v = rotateY(v, r.sinY, r.cosY, -1)
	v = rotateX(v, r.sinX, r.cosX, -1)
	return v
}

// toWorld applies R: X, then Y, then Z.
func (r *Rotate) toWorld(v core.Vec3) core.Vec3 {
	v = rotateX(v, r.sinX, r.cosX, 1)
	v = rotateY(v, r.sinY, r.cosY, 1)
	v = rotateZ(v, r.sinZ, r.cosZ, 1)
	return v
}

// Hit rotates the ray into the child's local frame by R^-1, intersects the
// child, then rotates the hit position and normal back by R.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	localRay := core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	rec, ok := r.Child.Hit(localRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return rec, true
}

// BoundingBox returns the precomputed enclosing box of the rotated child.
func (r *Rotate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}
