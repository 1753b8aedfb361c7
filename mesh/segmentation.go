// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReadSegmentation reads a cloth segmentation file for a mesh with
// numVertices vertices and returns the probability of each vertex
// being cloth. The file starts with a vertex count (kept as a header
// and not checked) followed by one value in [-1, 1] per vertex, where
// -1 is body and 1 is cloth. The number of values must equal numVertices.
func ReadSegmentation(r io.Reader, numVertices int) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return nil, fmt.Errorf("%w: segmentation file is empty", ErrMalformedAuxFile)
	}
	if _, err := strconv.Atoi(sc.Text()); err != nil {
		return nil, fmt.Errorf("%w: segmentation header %q is not a vertex count", ErrMalformedAuxFile, sc.Text())
	}
	probs := make([]float64, 0, numVertices)
	for sc.Scan() {
		if len(probs) == numVertices {
			return nil, fmt.Errorf("%w: segmentation has more values than the %d mesh vertices", ErrMalformedAuxFile, numVertices)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: segmentation value %d: %q is not a number", ErrMalformedAuxFile, len(probs), sc.Text())
		}
		if math.IsNaN(v) || v < -1 || v > 1 {
			return nil, fmt.Errorf("%w: segmentation value %d: %v is outside [-1, 1]", ErrMalformedAuxFile, len(probs), v)
		}
		probs = append(probs, (v+1)/2)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(probs) != numVertices {
		return nil, fmt.Errorf("%w: segmentation has %d values for %d mesh vertices", ErrMalformedAuxFile, len(probs), numVertices)
	}
	return probs, nil
}
