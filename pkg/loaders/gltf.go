// Package loaders reads external assets — raster textures and glTF mesh
// geometry — into the core/material/geometry types the renderer consumes.
package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/geometry"
)

// LoadGLTFMesh opens a .glb/.gltf file and flattens every mesh primitive's
// POSITION/NORMAL/TEXCOORD_0 attributes and indices into a single
// triangle list, assigning material to every face. Node transforms and
// multi-mesh hierarchy are not interpreted; callers needing a positioned
// instance should wrap the result in geometry.Translate/Rotate.
func LoadGLTFMesh(path string, material core.Material) ([]*geometry.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var triangles []*geometry.Triangle
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			tris, err := trianglesFromPrimitive(doc, prim, material)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			triangles = append(triangles, tris...)
		}
	}
	return triangles, nil
}

func trianglesFromPrimitive(doc *gltf.Document, prim *gltf.Primitive, material core.Material) ([]*geometry.Triangle, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vertex := func(i uint32) core.Vec3 {
		p := positions[i]
		return core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	normal := func(i uint32) core.Vec3 {
		if int(i) >= len(normals) {
			return core.Vec3{}
		}
		n := normals[i]
		return core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2]))
	}
	uv := func(i uint32) core.Vec2 {
		if int(i) >= len(uvs) {
			return core.Vec2{}
		}
		return core.NewVec2(float64(uvs[i][0]), float64(uvs[i][1]))
	}

	triangles := make([]*geometry.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]

		var tri *geometry.Triangle
		if len(normals) > 0 {
			tri = geometry.NewSmoothTriangle(vertex(a), vertex(b), vertex(c), normal(a), normal(b), normal(c), material)
		} else {
			tri = geometry.NewTriangle(vertex(a), vertex(b), vertex(c), material)
		}
		if len(uvs) > 0 {
			tri.UV0, tri.UV1, tri.UV2 = uv(a), uv(b), uv(c)
		}
		triangles = append(triangles, tri)
	}
	return triangles, nil
}
