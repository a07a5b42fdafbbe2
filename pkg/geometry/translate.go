package geometry

import (
	"github.com/mhollis/tracepath/pkg/core"
)

// Translate is a decorator that offsets a child hittable by Delta. It
// works by displacing the incoming ray by -Delta, intersecting the child
// in its own local space, then shifting the hit point back by +Delta.
type Translate struct {
	Child core.Hittable
	Delta core.Vec3
}

// NewTranslate wraps child, offsetting it by delta in world space.
func NewTranslate(child core.Hittable, delta core.Vec3) *Translate {
	return &Translate{Child: child, Delta: delta}
}

// Hit displaces the ray into the child's local space, intersects, and
// translates the hit position back into world space. The normal is
// unaffected by a pure translation.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Delta), ray.Direction, ray.Time)

	rec, ok := t.Child.Hit(offsetRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = rec.Point.Add(t.Delta)
	return rec, true
}

// BoundingBox translates the child's box by Delta.
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Child.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Delta), box.Max.Add(t.Delta)), true
}
