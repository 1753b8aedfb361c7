// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadLandmarks reads a landmark (key vertex) file and returns the
// position of each named landmark, taken from the given vertices.
// The file starts with the positive number of landmarks K, followed
// by K records of a name and a zero-based vertex index:
//
//	2
//	chin 5
//	navel 1024
//
// A name given more than once keeps its last vertex.
// Anything after the K records is ignored.
func ReadLandmarks(r io.Reader, vertices []r3.Vec) (map[string]r3.Vec, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		if err := sc.Err(); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return "", false, nil
	}

	tok, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: landmark file is empty", ErrMalformedAuxFile)
	}
	k, err := strconv.Atoi(tok)
	if err != nil || k <= 0 {
		return nil, fmt.Errorf("%w: number of landmarks should be a positive number, not %q", ErrMalformedAuxFile, tok)
	}

	lms := make(map[string]r3.Vec, k)
	for i := range k {
		name, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: expected %d landmarks, found %d", ErrMalformedAuxFile, k, i)
		}
		tok, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: landmark %q has no vertex index", ErrMalformedAuxFile, name)
		}
		vi, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: landmark %q vertex index %q is not an integer", ErrMalformedAuxFile, name, tok)
		}
		if vi < 0 || vi >= len(vertices) {
			return nil, fmt.Errorf("%w: landmark %q vertex %d, mesh has %d vertices", ErrIndexOutOfRange, name, vi, len(vertices))
		}
		lms[name] = vertices[vi]
	}
	return lms, nil
}
