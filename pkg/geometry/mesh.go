package geometry

import "github.com/mhollis/tracepath/pkg/core"

// TriangleMesh groups triangles loaded from an external asset (see
// pkg/loaders) under a single BVH so the scene builder can treat an
// imported mesh as one Hittable.
type TriangleMesh struct {
	Triangles []*Triangle
	bvh       core.Hittable
}

// NewTriangleMesh builds a BVH over the given triangles. logger receives
// the same "missing bounding box" diagnostics core.NewBVH would emit,
// though triangles always report a bounding box so this is unreachable in
// practice.
func NewTriangleMesh(triangles []*Triangle, logger core.Logger) *TriangleMesh {
	shapes := make([]core.Hittable, len(triangles))
	for i, t := range triangles {
		shapes[i] = t
	}
	return &TriangleMesh{
		Triangles: triangles,
		bvh:       core.NewBVH(shapes, 0, 1, logger),
	}
}

// Hit delegates to the mesh's internal BVH.
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox delegates to the mesh's internal BVH.
func (m *TriangleMesh) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.bvh.BoundingBox(time0, time1)
}
