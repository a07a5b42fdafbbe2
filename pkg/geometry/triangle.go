package geometry

import (
	"math"

	"github.com/mhollis/tracepath/pkg/core"
)

// Triangle is a single flat-shaded or vertex-normal-interpolated triangle,
// used to represent faces loaded from an external mesh (see pkg/loaders).
type Triangle struct {
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3 // per-vertex normals for smooth shading
	UV0, UV1, UV2 core.Vec2
	Material      core.Material
	Smooth        bool // interpolate N0/N1/N2 instead of using the face normal
}

// NewTriangle creates a flat-shaded triangle; its normal is derived from
// the vertex winding order.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n, N1: n, N2: n,
		Material: material,
	}
}

// NewSmoothTriangle creates a triangle with independent per-vertex normals
// that are barycentrically interpolated for shading, matching glTF-style
// vertex-normal meshes.
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0, N1: n1, N2: n2,
		Material: material,
		Smooth:   true,
	}
}

// Hit implements the Möller–Trumbore ray-triangle intersection test.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if math.Abs(a) < epsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	w := 1 - u - v
	point := ray.At(t)

	var outwardNormal core.Vec3
	if tr.Smooth {
		outwardNormal = tr.N0.Multiply(w).Add(tr.N1.Multiply(u)).Add(tr.N2.Multiply(v)).Normalize()
	} else {
		outwardNormal = tr.N0
	}

	texU := w*tr.UV0.X + u*tr.UV1.X + v*tr.UV2.X
	texV := w*tr.UV0.Y + u*tr.UV1.Y + v*tr.UV2.Y

	rec := core.HitRecord{T: t, Point: point, U: texU, V: texV, Material: tr.Material}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// BoundingBox returns the box enclosing the triangle's three vertices,
// inflated by a small epsilon so a triangle lying exactly in an
// axis-aligned plane still has a non-degenerate extent along that axis.
func (tr *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	const epsilon = 1e-4
	min := core.NewVec3(
		math.Min(tr.V0.X, math.Min(tr.V1.X, tr.V2.X))-epsilon,
		math.Min(tr.V0.Y, math.Min(tr.V1.Y, tr.V2.Y))-epsilon,
		math.Min(tr.V0.Z, math.Min(tr.V1.Z, tr.V2.Z))-epsilon,
	)
	max := core.NewVec3(
		math.Max(tr.V0.X, math.Max(tr.V1.X, tr.V2.X))+epsilon,
		math.Max(tr.V0.Y, math.Max(tr.V1.Y, tr.V2.Y))+epsilon,
		math.Max(tr.V0.Z, math.Max(tr.V1.Z, tr.V2.Z))+epsilon,
	)
	return core.NewAABB(min, max), true
}
