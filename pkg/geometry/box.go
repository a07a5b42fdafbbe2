package geometry

import (
	"github.com/mhollis/tracepath/pkg/core"
)

// Box is an axis-aligned box composed of six rectangles.
type Box struct {
	Min, Max core.Vec3
	sides    *core.HittableList
}

// NewBox creates a box spanning [min, max] from six Rect faces.
func NewBox(min, max core.Vec3, material core.Material) *Box {
	sides := core.NewHittableList(nil)

	sides.Add(NewRectXY(min.X, max.X, min.Y, max.Y, max.Z, material))
	sides.Add(NewRectXY(min.X, max.X, min.Y, max.Y, min.Z, material))

	sides.Add(NewRectXZ(min.X, max.X, min.Z, max.Z, max.Y, material))
	sides.Add(NewRectXZ(min.X, max.X, min.Z, max.Z, min.Y, material))

	sides.Add(NewRectYZ(min.Y, max.Y, min.Z, max.Z, max.X, material))
	sides.Add(NewRectYZ(min.Y, max.Y, min.Z, max.Z, min.X, material))

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit delegates to the six constituent rectangles.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's own extent directly.
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
