// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh loads static triangle meshes (.obj or .ply) of scanned
// bodies and garments for fitting and display.
//
// [Load] reads the geometry, computes vertex and face normals, centers
// the mesh on its mean point and converts it to meters with a simple
// height heuristic, and derives a render layout for OpenGL-style
// pipelines. Both the normalized and the original vertices stay
// available. Optionally, named landmark vertices and a per-vertex
// cloth segmentation can be loaded alongside.
//
// A [Mesh] is read-only once loaded: accessors return copies.
package mesh

//go:generate go run cogentcore.org/core/enums/cmd/enumgen@v0.3.12

import (
	"maps"
	"slices"

	"cogentcore.org/core/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a static mesh loaded from a file. Use [Load] to create one.
type Mesh struct {
	name      string
	groupName string
	directory string
	gender    Gender

	vertices      []r3.Vec
	normalized    []r3.Vec
	vertexNormals []r3.Vec
	faces         [][]int
	faceNormals   []r3.Vec
	meanPoint     r3.Vec
	triangular    bool

	renderVertices []Vertex
	renderIndices  math32.ArrayU32

	landmarks map[string]r3.Vec

	segmented bool
	clothProb []float64

	warnings []string
}

// Name returns the file name of the mesh without directory and extension.
func (ms *Mesh) Name() string { return ms.name }

// GroupName returns the name of the directory holding the mesh file
// and the mesh name, joined by [GroupSeparator].
func (ms *Mesh) GroupName() string { return ms.groupName }

// Directory returns the directory holding the mesh file.
func (ms *Mesh) Directory() string { return ms.directory }

// Gender returns the gender the mesh was loaded with.
func (ms *Mesh) Gender() Gender { return ms.gender }

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int { return len(ms.vertices) }

// NumFaces returns the number of faces.
func (ms *Mesh) NumFaces() int { return len(ms.faces) }

// Vertices returns the vertices in the original units and position.
func (ms *Mesh) Vertices() []r3.Vec { return slices.Clone(ms.vertices) }

// NormalizedVertices returns the vertices centered on [Mesh.MeanPoint]
// and scaled to meters.
func (ms *Mesh) NormalizedVertices() []r3.Vec { return slices.Clone(ms.normalized) }

// MeanPoint returns the mean of the original vertices.
func (ms *Mesh) MeanPoint() r3.Vec { return ms.meanPoint }

// VertexNormals returns the unit normal of each vertex.
func (ms *Mesh) VertexNormals() []r3.Vec { return slices.Clone(ms.vertexNormals) }

// Faces returns the zero-based vertex indices of each face.
func (ms *Mesh) Faces() [][]int {
	fcs := make([][]int, len(ms.faces))
	for i, fc := range ms.faces {
		fcs[i] = slices.Clone(fc)
	}
	return fcs
}

// FaceNormals returns the unit normal of each face.
func (ms *Mesh) FaceNormals() []r3.Vec { return slices.Clone(ms.faceNormals) }

// IsTriangular returns whether every face is a triangle.
func (ms *Mesh) IsTriangular() bool { return ms.triangular }

// RenderVertices returns the normalized vertices with their normals,
// in vertex order.
func (ms *Mesh) RenderVertices() []Vertex { return slices.Clone(ms.renderVertices) }

// RenderIndices returns the zero-based face indices flattened
// face by face.
func (ms *Mesh) RenderIndices() math32.ArrayU32 { return slices.Clone(ms.renderIndices) }

// RenderVertexData returns the render vertices interleaved as
// px py pz nx ny nz per vertex.
func (ms *Mesh) RenderVertexData() math32.ArrayF32 { return interleave(ms.renderVertices) }

// Landmarks returns the landmark positions by name, in the original
// units and position. It is empty if no landmark file was loaded.
func (ms *Mesh) Landmarks() map[string]r3.Vec { return maps.Clone(ms.landmarks) }

// Landmark returns the position of the named landmark.
func (ms *Mesh) Landmark(name string) (r3.Vec, bool) {
	v, ok := ms.landmarks[name]
	return v, ok
}

// LandmarkNames returns the sorted landmark names.
func (ms *Mesh) LandmarkNames() []string {
	return slices.Sorted(maps.Keys(ms.landmarks))
}

// IsSegmented returns whether a cloth segmentation was loaded.
func (ms *Mesh) IsSegmented() bool { return ms.segmented }

// ClothProbabilities returns the probability of each vertex
// being cloth, in [0, 1]. It is nil if the mesh is not segmented.
func (ms *Mesh) ClothProbabilities() []float64 { return slices.Clone(ms.clothProb) }

// Warnings returns the warnings raised while loading the mesh.
func (ms *Mesh) Warnings() []string { return slices.Clone(ms.warnings) }
