// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "gonum.org/v1/gonum/spatial/r3"

// faceArea returns the area-weighted normal of the given polygon:
// twice its area times its unit normal, summed over the triangle fan
// (0, i-1, i). It is the zero vector for degenerate faces.
func faceArea(verts []r3.Vec, face []int) r3.Vec {
	var sum r3.Vec
	a := verts[face[0]]
	for i := 2; i < len(face); i++ {
		b, c := verts[face[i-1]], verts[face[i]]
		sum = r3.Add(sum, r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
	}
	return sum
}

// unit returns v scaled to unit length, or the zero vector if v is zero.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}

// computeNormals returns the unit normal of each face and the
// area-weighted unit normal of each vertex. Vertices that are
// not part of any non-degenerate face get the zero vector.
func computeNormals(verts []r3.Vec, faces [][]int) (vertexNormals, faceNormals []r3.Vec) {
	vertexNormals = make([]r3.Vec, len(verts))
	faceNormals = make([]r3.Vec, len(faces))
	for fi, fc := range faces {
		if len(fc) < 3 {
			continue
		}
		area := faceArea(verts, fc)
		faceNormals[fi] = unit(area)
		for _, vi := range fc {
			vertexNormals[vi] = r3.Add(vertexNormals[vi], area)
		}
	}
	for vi, n := range vertexNormals {
		vertexNormals[vi] = unit(n)
	}
	return vertexNormals, faceNormals
}
