// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/base/errors"

// Errors returned by [Load] and the auxiliary file readers, wrapped
// with context about the file involved. Test for them with [errors.Is].
var (
	// ErrFileNotFound is returned when an input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat is returned for a mesh file whose
	// extension is neither .obj nor .ply, or whose content
	// does not match its extension.
	ErrUnsupportedFormat = errors.New("unsupported mesh format; supported formats: .obj, .ply")

	// ErrEmptyGeometry is returned when a mesh file has no vertices or no faces.
	ErrEmptyGeometry = errors.New("mesh has no vertices or no faces")

	// ErrMalformedGeometry is returned when the mesh file decoder rejects the file.
	ErrMalformedGeometry = errors.New("malformed mesh file")

	// ErrMalformedAuxFile is returned when a landmark or segmentation
	// file does not match the expected format or vertex count.
	ErrMalformedAuxFile = errors.New("malformed auxiliary file")

	// ErrIndexOutOfRange is returned when a landmark references
	// a vertex index the mesh does not have.
	ErrIndexOutOfRange = errors.New("vertex index out of range")

	// ErrIO is returned for underlying read and write failures.
	ErrIO = errors.New("i/o error")
)
