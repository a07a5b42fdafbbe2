package core

// HittableList is a flat collection of hittables tested by linear scan.
// It is the reference semantics the BVH is built to agree with (spec
// invariant: BVH.Hit == HittableList.Hit for the same shape set).
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a HittableList over the given objects.
func NewHittableList(objects []Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends a hittable to the list.
func (l *HittableList) Add(h Hittable) {
	l.Objects = append(l.Objects, h)
}

// Hit returns the closest intersection among all objects within
// [tMin, tMax], narrowing tMax to each successive hit's T as it scans.
func (l *HittableList) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of every object's bounding box over
// [time0, time1]. Returns ok=false if the list is empty or if any member
// lacks a bounding box (an unbounded child makes the union unbounded too).
func (l *HittableList) BoundingBox(time0, time1 float64) (AABB, bool) {
	if len(l.Objects) == 0 {
		return AABB{}, false
	}

	var box AABB
	first := true
	for _, obj := range l.Objects {
		objBox, ok := obj.BoundingBox(time0, time1)
		if !ok {
			return AABB{}, false
		}
		if first {
			box = objBox
			first = false
		} else {
			box = box.Union(objBox)
		}
	}
	return box, true
}
