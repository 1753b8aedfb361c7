// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is one vertex of the render layout of a [Mesh],
// in single precision for GPU upload.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
}

// vec3 converts a double precision vector to a [math32.Vector3].
func vec3(v r3.Vec) math32.Vector3 {
	return math32.Vec3(float32(v.X), float32(v.Y), float32(v.Z))
}

// renderLayout returns one [Vertex] per normalized vertex, in order,
// and the face indices flattened in row-major order.
func renderLayout(normalized, normals []r3.Vec, faces [][]int) ([]Vertex, math32.ArrayU32) {
	verts := make([]Vertex, len(normalized))
	for i, v := range normalized {
		verts[i] = Vertex{Position: vec3(v), Normal: vec3(normals[i])}
	}
	n := 0
	for _, fc := range faces {
		n += len(fc)
	}
	idx := make(math32.ArrayU32, 0, n)
	for _, fc := range faces {
		for _, vi := range fc {
			idx = append(idx, uint32(vi))
		}
	}
	return verts, idx
}

// interleave returns the render vertices as a flat array of
// px py pz nx ny nz values per vertex.
func interleave(verts []Vertex) math32.ArrayF32 {
	data := make(math32.ArrayF32, 0, 6*len(verts))
	for _, v := range verts {
		data = append(data, v.Position.X, v.Position.Y, v.Position.Z, v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	return data
}
