package core

import "sort"

// BVHNode is a node in the bounding volume hierarchy: either a leaf
// wrapping a single Hittable, or an internal node with two children whose
// boxes it encloses.
type BVHNode struct {
	box         AABB
	left, right Hittable
	leaf        Hittable // set only for leaves; left==right==leaf in that case
}

// axisCycler cycles x -> y -> z -> x ... across recursive calls. Round-robin
// is one of the two splitting policies spec.md allows (the other being a
// uniformly random axis); round-robin is chosen here because it keeps BVH
// construction deterministic given a fixed input order, which simplifies
// testing.
type axisCycler struct {
	next int
}

func (c *axisCycler) axis() int {
	a := c.next % 3
	c.next++
	return a
}

// NewBVH builds a bounding volume hierarchy over shapes for the shutter
// interval [time0, time1]. Shapes without a bounding box (e.g. an
// unbounded ConstantMedium boundary) are reported once via logger and
// excluded: a BVH leaf can only wrap bounded geometry, so such a shape is
// silently unreachable through this BVH.
func NewBVH(shapes []Hittable, time0, time1 float64, logger Logger) Hittable {
	bounded := make([]Hittable, 0, len(shapes))
	warned := false
	for _, s := range shapes {
		if _, ok := s.BoundingBox(time0, time1); ok {
			bounded = append(bounded, s)
		} else if !warned {
			if logger != nil {
				logger.Printf("bvh: shape %T has no bounding box; excluded from acceleration structure", s)
			}
			warned = true
		}
	}

	if len(bounded) == 0 {
		return emptyHittable{}
	}

	c := &axisCycler{}
	return buildBVH(bounded, time0, time1, c)
}

func buildBVH(shapes []Hittable, time0, time1 float64, c *axisCycler) Hittable {
	switch len(shapes) {
	case 1:
		box, _ := shapes[0].BoundingBox(time0, time1)
		return &BVHNode{box: box, left: shapes[0], right: shapes[0], leaf: shapes[0]}
	case 2:
		axis := c.axis()
		boxA, _ := shapes[0].BoundingBox(time0, time1)
		boxB, _ := shapes[1].BoundingBox(time0, time1)
		left, right := shapes[0], shapes[1]
		if axisValue(boxB.Min, axis) < axisValue(boxA.Min, axis) {
			left, right = shapes[1], shapes[0]
		}
		box := SurroundingBox(boxA, boxB)
		return &BVHNode{box: box, left: left, right: right}
	default:
		axis := c.axis()
		sorted := make([]Hittable, len(shapes))
		copy(sorted, shapes)
		sort.Slice(sorted, func(i, j int) bool {
			bi, _ := sorted[i].BoundingBox(time0, time1)
			bj, _ := sorted[j].BoundingBox(time0, time1)
			return axisValue(bi.Min, axis) < axisValue(bj.Min, axis)
		})

		mid := len(sorted) / 2
		left := buildBVH(sorted[:mid], time0, time1, c)
		right := buildBVH(sorted[mid:], time0, time1, c)
		leftBox, _ := left.BoundingBox(time0, time1)
		rightBox, _ := right.BoundingBox(time0, time1)
		return &BVHNode{box: SurroundingBox(leftBox, rightBox), left: left, right: right}
	}
}

func axisValue(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit implements Hittable. It rejects the whole subtree against the node's
// box before recursing, then queries the right child only over
// [tMin, closest-so-far] once the left child has reported a hit.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return HitRecord{}, false
	}

	if n.leaf != nil {
		return n.leaf.Hit(ray, tMin, tMax)
	}

	leftHit, hitLeft := n.left.Hit(ray, tMin, tMax)
	closest := tMax
	if hitLeft {
		closest = leftHit.T
	}

	rightHit, hitRight := n.right.Hit(ray, tMin, closest)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements Hittable; a BVH node's box is precomputed at
// construction time and does not depend on the query interval.
func (n *BVHNode) BoundingBox(time0, time1 float64) (AABB, bool) {
	return n.box, true
}

// emptyHittable never hits and has no bounding box; returned for a BVH
// built over zero bounded shapes.
type emptyHittable struct{}

func (emptyHittable) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) { return HitRecord{}, false }
func (emptyHittable) BoundingBox(time0, time1 float64) (AABB, bool)     { return AABB{}, false }
