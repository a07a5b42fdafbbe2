package core

import (
	"math"
	"testing"
)

func TestAABBHit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	hit := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !box.Hit(hit, 0, math.MaxFloat64) {
		t.Errorf("expected ray to hit box")
	}

	miss := NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1))
	if box.Hit(miss, 0, math.MaxFloat64) {
		t.Errorf("expected ray to miss box")
	}
}

func TestAABBHitMonotonicInTMax(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	// If the box is hit over [tMin, c], it must still be hit over any wider
	// interval [tMin, c'] with c' >= c.
	if !box.Hit(ray, 0, 4) {
		t.Fatalf("expected hit over [0,4]")
	}
	if !box.Hit(ray, 0, 100) {
		t.Errorf("widening tMax should not turn a hit into a miss")
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(NewVec3(-1, -1, -1), NewVec3(0, 0, 0))
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2))

	u := a.Union(b)
	want := NewAABB(NewVec3(-1, -1, -1), NewVec3(2, 2, 2))
	if !u.Min.Equals(want.Min) || !u.Max.Equals(want.Max) {
		t.Errorf("Union = %v, want %v", u, want)
	}
}
