// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Encoder writes vertex positions and faces as an obj file.
type Encoder struct {

	// Comment is written as a leading comment line, if non-empty.
	Comment string

	w *bufio.Writer
}

// NewEncoder returns a new Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes the given vertices as "v" lines followed by the
// given zero-based faces as 1-based "f" lines, and flushes the output.
// Coordinates use the shortest representation that reads back to
// the same float64 value.
// Nothing is written if any face index is out of range.
func (enc *Encoder) Encode(vertices []r3.Vec, faces [][]int) error {
	nv := len(vertices)
	for fi, fc := range faces {
		for _, vi := range fc {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("obj.Encoder: face %d vertex index %d out of range [0, %d)", fi, vi, nv)
			}
		}
	}
	if enc.Comment != "" {
		fmt.Fprintf(enc.w, "# %s\n", enc.Comment)
	}
	fmt.Fprintf(enc.w, "# vertices: %d, faces: %d\n", len(vertices), len(faces))
	buf := make([]byte, 0, 64)
	for _, v := range vertices {
		buf = append(buf[:0], "v "...)
		buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Z, 'g', -1, 64)
		buf = append(buf, '\n')
		enc.w.Write(buf)
	}
	for _, fc := range faces {
		buf = append(buf[:0], 'f')
		for _, vi := range fc {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(vi+1), 10)
		}
		buf = append(buf, '\n')
		enc.w.Write(buf)
	}
	return enc.w.Flush()
}
