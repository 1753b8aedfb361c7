// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path, name, group, dir string
	}{
		{"/data/isaac/isaac_scan.obj", "isaac_scan", "isaac-isaac_scan", "/data/isaac"},
		{`C:\scans\bob.ply`, "bob", "scans-bob", `C:\scans`},
		{"data/mixed\\seps/x.obj", "x", "seps-x", "data/mixed\\seps"},
		{"scans/a.b.obj", "a.b", "scans-a.b", "scans"},
		{"mesh.obj", "mesh", "mesh", ""},
		{"/mesh.obj", "mesh", "mesh", ""},
		{"scans/noext", "noext", "scans-noext", "scans"},
	}
	for _, tt := range tests {
		name, group, dir := splitPath(tt.path)
		assert.Equal(t, tt.name, name, tt.path)
		assert.Equal(t, tt.group, group, tt.path)
		assert.Equal(t, tt.dir, dir, tt.path)
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/body.obj")
	assert.NoError(t, err)
	assert.Equal(t, FormatOBJ, f)

	f, err = FormatFromPath(`C:\scans\body.PLY`)
	assert.NoError(t, err)
	assert.Equal(t, FormatPLY, f)
	assert.Equal(t, "ply", f.String())

	for _, p := range []string{"body.stl", "body", "obj", "dir.obj/body"} {
		_, err = FormatFromPath(p)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, p)
	}
}

func TestGender(t *testing.T) {
	var g Gender
	assert.Equal(t, Unknown, g)
	assert.Equal(t, "unknown", g.String())

	g, err := ParseGender("Female")
	assert.NoError(t, err)
	assert.Equal(t, Female, g)

	g, err = ParseGender("")
	assert.NoError(t, err)
	assert.Equal(t, Unknown, g)

	g, err = ParseGender("MALE")
	assert.NoError(t, err)
	assert.Equal(t, Male, g)

	_, err = ParseGender("other")
	assert.ErrorContains(t, err, "not a valid value for type Gender")

	assert.NoError(t, g.UnmarshalText([]byte("male")))
	assert.Equal(t, Male, g)
	b, err := g.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "male", string(b))
	assert.Equal(t, "7", Gender(7).String())
	assert.Equal(t, []Gender{Unknown, Female, Male}, GenderValues())
}
