// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestReadSegmentation(t *testing.T) {
	probs, err := ReadSegmentation(strings.NewReader("3\n-1\n0\n1\n"), 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, probs)

	// the header count is informational only
	probs, err = ReadSegmentation(strings.NewReader("10 -0.5 0.5"), 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, probs)
}

func TestReadSegmentationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"bad header", "three -1 0 1"},
		{"fewer", "3 -1 0"},
		{"more", "3 -1 0 1 1"},
		{"not a number", "3 -1 x 1"},
		{"out of range", "3 -1 0 1.5"},
		{"nan", "3 -1 NaN 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSegmentation(strings.NewReader(tt.src), 3)
			assert.ErrorIs(t, err, ErrMalformedAuxFile)
		})
	}
}

func TestReadLandmarks(t *testing.T) {
	verts := make([]r3.Vec, 6)
	for i := range verts {
		verts[i] = r3.Vec{X: float64(i), Y: 10 * float64(i), Z: -1}
	}
	lms, err := ReadLandmarks(strings.NewReader("1\nchin 5"), verts)
	require.NoError(t, err)
	assert.Equal(t, map[string]r3.Vec{"chin": verts[5]}, lms)

	lms, err = ReadLandmarks(strings.NewReader("3\nchin 5\nnavel 0\nchin 2\ntrailing stuff"), verts)
	require.NoError(t, err)
	assert.Equal(t, map[string]r3.Vec{"chin": verts[2], "navel": verts[0]}, lms)
}

func TestReadLandmarksErrors(t *testing.T) {
	verts := make([]r3.Vec, 6)
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", ErrMalformedAuxFile},
		{"zero", "0\n", ErrMalformedAuxFile},
		{"negative", "-2\nchin 1", ErrMalformedAuxFile},
		{"not a count", "chin 1", ErrMalformedAuxFile},
		{"missing records", "2\nchin 1", ErrMalformedAuxFile},
		{"missing index", "1\nchin", ErrMalformedAuxFile},
		{"bad index", "1\nchin five", ErrMalformedAuxFile},
		{"index too large", "1\nchin 6", ErrIndexOutOfRange},
		{"negative index", "1\nchin -1", ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLandmarks(strings.NewReader(tt.src), verts)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
