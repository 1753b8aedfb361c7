// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := "v 0 0 0\nv 10 150 0\nv 0 0 10\nv 10 150 10\nf 1 2 3\nf 2 4 3\n"
	ms, err := Load(writeFile(t, filepath.Join(dir, "scans", "tall.obj"), src), Options{})
	require.NoError(t, err)

	out := t.TempDir()
	require.NoError(t, ms.Save(out))
	fname := ms.SaveFilename(out)
	assert.Equal(t, filepath.Join(out, "scans-tall_normalized.obj"), fname)

	saved, err := Load(fname, Options{})
	require.NoError(t, err)
	assert.Equal(t, ms.NumVertices(), saved.NumVertices())
	assert.Equal(t, ms.Faces(), saved.Faces())
	// already in meters and centered
	assert.Empty(t, saved.Warnings())
	norm := ms.NormalizedVertices()
	for i, v := range saved.Vertices() {
		assertVec(t, norm[i], v)
	}
	assert.Equal(t, "scans-tall_normalized", saved.Name())
}

func TestWriteOBJ(t *testing.T) {
	ms, err := Load(writeFile(t, filepath.Join(t.TempDir(), "scans", "body.obj"), sixObj), Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ms.WriteOBJ(&buf))
	s := buf.String()
	assert.True(t, strings.HasPrefix(s, "# scans-body normalized\n"))
	assert.Contains(t, s, "\nv -0.5 -1 0\n")
	assert.Contains(t, s, "\nf 4 6 5\n")
	assert.Equal(t, 6, strings.Count(s, "\nv "))
	assert.Equal(t, 4, strings.Count(s, "\nf "))
}

func TestSaveUnwritable(t *testing.T) {
	ms, err := Load(writeFile(t, filepath.Join(t.TempDir(), "body.obj"), sixObj), Options{})
	require.NoError(t, err)
	err = ms.Save(filepath.Join(t.TempDir(), "missing", "dir"))
	assert.ErrorIs(t, err, ErrIO)
}

func TestSaveRemovesPartialFile(t *testing.T) {
	ms := &Mesh{
		name:       "body",
		groupName:  "scans-body",
		normalized: []r3.Vec{{}, {X: 1}, {Y: 1}},
		faces:      [][]int{{0, 1, 2}, {0, 2, 5}},
	}
	dir := t.TempDir()
	err := ms.Save(dir)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorContains(t, err, "out of range")
	assert.NoFileExists(t, ms.SaveFilename(dir))
}
