// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const trianglePly = `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 2
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
0 1 0
0 0 1
3 0 1 2
3 0 2 3
`

const asciiHeader = `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face %d
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
`

// binaryPly returns a little endian PLY file with the given
// vertices and triangles.
func binaryPly(verts [][3]float32, tris [][3]int32) []byte {
	var buf bytes.Buffer
	buf.WriteString("ply\nformat binary_little_endian 1.0\n")
	fmt.Fprintf(&buf, "element vertex %d\nproperty float x\nproperty float y\nproperty float z\n", len(verts))
	fmt.Fprintf(&buf, "element face %d\nproperty list uchar int vertex_indices\nend_header\n", len(tris))
	for _, v := range verts {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	for _, tr := range tris {
		buf.WriteByte(3)
		binary.Write(&buf, binary.LittleEndian, tr)
	}
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	dt, err := Read(strings.NewReader(trianglePly))
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, dt.Vertices)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, dt.Faces)
}

func TestReadCases(t *testing.T) {
	square := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	tests := []struct {
		name  string
		src   []byte
		verts []r3.Vec
		faces [][]int
		err   string
	}{
		{
			name:  "binary",
			src:   binaryPly([][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 2, 0}}, [][3]int32{{0, 1, 2}}),
			verts: []r3.Vec{{}, {X: 1}, {Y: 2}},
			faces: [][]int{{0, 1, 2}},
		},
		{
			name:  "quad",
			src:   []byte(fmt.Sprintf(asciiHeader, 1) + "4 0 1 2 3\n"),
			verts: square,
			faces: [][]int{{0, 1, 2}, {0, 2, 3}},
		},
		{
			name:  "point cloud",
			src:   []byte(strings.Replace(fmt.Sprintf(asciiHeader, 0), "element face 0\nproperty list uchar int vertex_indices\n", "", 1)),
			verts: square,
		},
		{
			name: "ascii index out of range",
			src:  []byte(fmt.Sprintf(asciiHeader, 1) + "3 0 1 7\n"),
			err:  "vertex index 7 out of range [0, 4)",
		},
		{
			name: "binary index out of range",
			src:  binaryPly([][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int32{{0, 1, 3}}),
			err:  "vertex index 3 out of range [0, 3)",
		},
		{
			name: "negative index",
			src:  []byte(fmt.Sprintf(asciiHeader, 1) + "3 0 -1 2\n"),
			err:  "vertex index -1 out of range",
		},
		{
			name: "pentagon",
			src:  []byte(fmt.Sprintf(asciiHeader, 1) + "5 0 1 2 3 0\n"),
			err:  "ply:",
		},
		{
			name: "short face line",
			src:  []byte(fmt.Sprintf(asciiHeader, 1) + "3 0 1\n"),
			err:  "ply: malformed data",
		},
		{
			name: "no positions",
			src:  []byte("ply\nformat ascii 1.0\nelement vertex 1\nproperty float u\nend_header\n0\n"),
			err:  "no x, y, z vertex properties",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := Read(bytes.NewReader(tt.src))
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.verts, dt.Vertices)
			assert.Equal(t, tt.faces, dt.Faces)
		})
	}
}

func TestReadNotPLY(t *testing.T) {
	_, err := Read(strings.NewReader("v 0 0 0\n"))
	assert.ErrorIs(t, err, ErrNotPLY)

	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNotPLY)
}

func TestIsPLY(t *testing.T) {
	assert.True(t, IsPLY([]byte("ply\nformat")))
	assert.True(t, IsPLY([]byte("ply\r\n")))
	assert.True(t, IsPLY([]byte("ply")))
	assert.False(t, IsPLY([]byte("plyx")))
	assert.False(t, IsPLY([]byte("pl")))
	assert.False(t, IsPLY([]byte("obj\n")))
}
