package core

import (
	"math"
	"testing"
)

func TestReflectInvolution(t *testing.T) {
	n := NewVec3(0, 1, 0)
	d := NewVec3(1, -1, 0).Normalize()

	once := Reflect(d, n)
	twice := Reflect(once, n)

	if !twice.Equals(d) {
		t.Errorf("reflect(reflect(d,n),n) = %v, want %v", twice, d)
	}
}

func TestReflectanceBoundary(t *testing.T) {
	eta := 1.5
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0

	if got := Reflectance(1, eta); math.Abs(got-r0) > 1e-9 {
		t.Errorf("Reflectance(1, eta) = %v, want %v", got, r0)
	}
	if got := Reflectance(0, eta); math.Abs(got-1) > 1e-9 {
		t.Errorf("Reflectance(0, eta) = %v, want 1", got)
	}
}

func TestNearZero(t *testing.T) {
	tests := []struct {
		v    Vec3
		want bool
	}{
		{NewVec3(0, 0, 0), true},
		{NewVec3(1e-10, 1e-10, 1e-10), true},
		{NewVec3(0.1, 0, 0), false},
	}
	for _, tt := range tests {
		if got := tt.v.NearZero(); got != tt.want {
			t.Errorf("NearZero(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := a.Cross(b); !got.Equals(NewVec3(-3, 6, -3)) {
		t.Errorf("Cross = %v", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); !got.Equals(Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestRefractStraightThrough(t *testing.T) {
	// A ray hitting a flat interface at normal incidence refracts straight
	// through regardless of the index ratio.
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	refracted := Refract(uv, n, 1.0/1.5)

	if math.Abs(refracted.X) > 1e-9 || math.Abs(refracted.Z) > 1e-9 {
		t.Errorf("Refract at normal incidence bent sideways: %v", refracted)
	}
	if refracted.Y >= 0 {
		t.Errorf("Refract at normal incidence should keep direction pointing down: %v", refracted)
	}
}

func TestRandomUnitVectorIsUnit(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("RandomUnitVector length = %v, want 1", v.Length())
		}
	}
}

func TestRandomInUnitDiskStaysInXY(t *testing.T) {
	sampler := NewSeededSampler(11)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("RandomInUnitDisk produced nonzero Z: %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("RandomInUnitDisk produced point outside disk: %v", p)
		}
	}
}
