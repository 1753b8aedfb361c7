// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ply reads vertex positions and triangle faces from
// Stanford PLY files (*.ply), in either ASCII or binary encoding.
package ply

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"
	"github.com/h2non/filetype"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNotPLY is returned when the data does not start with the ply magic line.
var ErrNotPLY = errors.New("ply: missing ply magic number")

// Extension is the file extension registered with [filetype] for PLY data.
const Extension = "ply"

func init() {
	filetype.AddMatcher(filetype.NewType(Extension, "model/ply"), IsPLY)
}

// IsPLY reports whether the given leading bytes of a file
// are the magic line of a PLY header.
func IsPLY(head []byte) bool {
	if len(head) < 3 || head[0] != 'p' || head[1] != 'l' || head[2] != 'y' {
		return false
	}
	return len(head) == 3 || head[3] == '\n' || head[3] == '\r'
}

// Data is the geometry read from a PLY file.
type Data struct {

	// Vertices are the vertex positions, in file order.
	Vertices []r3.Vec

	// Faces are zero-based vertex index triples, with quads split
	// into two triangles. It is empty when the file has no face
	// element (a point cloud).
	Faces [][]int
}

// Read reads the PLY data from r. Every face index is checked
// against the number of vertices.
func Read(r io.Reader) (dt *Data, err error) {
	// the polyform reader indexes past the end of short data lines
	defer func() {
		if rv := recover(); rv != nil {
			dt, err = nil, fmt.Errorf("ply: malformed data: %v", rv)
		}
	}()
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !filetype.Is(head, Extension) {
		return nil, ErrNotPLY
	}
	m, err := ply.ReadMesh(br)
	if err != nil {
		return nil, fmt.Errorf("ply: %w", err)
	}
	if !slices.Contains(m.Float3Attributes(), modeling.PositionAttribute) {
		return nil, errors.New("ply: no x, y, z vertex properties")
	}
	dt = &Data{}
	m.ScanFloat3Attribute(modeling.PositionAttribute, func(i int, p vector3.Float64) {
		dt.Vertices = append(dt.Vertices, r3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()})
	})
	if m.Topology() != modeling.TriangleTopology {
		return dt, nil
	}
	idx := m.Indices()
	n := idx.Len()
	if n%3 != 0 {
		return nil, fmt.Errorf("ply: %d triangle indexes is not a multiple of 3", n)
	}
	nv := len(dt.Vertices)
	dt.Faces = make([][]int, n/3)
	for fi := range dt.Faces {
		fc := []int{idx.At(3 * fi), idx.At(3*fi + 1), idx.At(3*fi + 2)}
		for _, vi := range fc {
			if vi < 0 || vi >= nv {
				return nil, fmt.Errorf("ply: triangle %d vertex index %d out of range [0, %d)", fi, vi, nv)
			}
		}
		dt.Faces[fi] = fc
	}
	return dt, nil
}
