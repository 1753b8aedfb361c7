// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/mesh/mesh/obj"
	"cogentcore.org/mesh/mesh/ply"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options are the optional inputs of [Load].
type Options struct {

	// Gender is the gender of the body the mesh represents.
	Gender Gender

	// LandmarksPath is the landmark file to load, if any.
	// See [ReadLandmarks] for the format.
	LandmarksPath string

	// SegmentationPath is the cloth segmentation file to load, if any.
	// See [ReadSegmentation] for the format.
	SegmentationPath string

	// Logger receives the warnings raised while loading.
	// It defaults to [slog.Default].
	Logger *slog.Logger
}

// Load loads the mesh file at the given path, which must be
// an .obj or .ply file, along with any auxiliary files named in opts.
// All files are checked for existence before anything is read.
// It returns an error if any step fails; no partial mesh is returned.
func Load(path string, opts Options) (*Mesh, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}
	for _, aux := range []string{opts.LandmarksPath, opts.SegmentationPath} {
		if aux == "" {
			continue
		}
		if err := checkFile(aux); err != nil {
			return nil, err
		}
	}
	ms := &Mesh{gender: opts.Gender}
	ms.name, ms.groupName, ms.directory = splitPath(path)
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("mesh", ms.name)

	if err := ms.readFile(path, log); err != nil {
		return nil, err
	}
	ms.normalizeVertices(log)
	ms.renderVertices, ms.renderIndices = renderLayout(ms.normalized, ms.vertexNormals, ms.faces)

	if opts.SegmentationPath != "" {
		probs, err := readFileWith(opts.SegmentationPath, func(f *os.File) ([]float64, error) {
			return ReadSegmentation(f, len(ms.vertices))
		})
		if err != nil {
			return nil, err
		}
		ms.clothProb = probs
		ms.segmented = true
	}
	if opts.LandmarksPath != "" {
		lms, err := readFileWith(opts.LandmarksPath, func(f *os.File) (map[string]r3.Vec, error) {
			return ReadLandmarks(f, ms.vertices)
		})
		if err != nil {
			return nil, err
		}
		ms.landmarks = lms
	}
	return ms, nil
}

// checkFile returns an [ErrFileNotFound] error if the given
// path is not an existing file.
func checkFile(path string) error {
	ok, err := fsx.FileExists(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrIO, path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}
	return nil
}

// readFileWith opens the given file, reads it with read,
// and closes it, adding the file name to any error.
func readFileWith[T any](path string, read func(f *os.File) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// readFile reads the geometry of the given mesh file
// and computes its normals.
func (ms *Mesh) readFile(path string, log *slog.Logger) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var verts []r3.Vec
	var faces [][]int
	switch format {
	case FormatOBJ:
		dec, err := readFileWith(path, func(f *os.File) (*obj.Decoder, error) {
			dec, err := obj.Decode(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
			}
			return dec, nil
		})
		if err != nil {
			return err
		}
		for _, w := range dec.Warnings {
			log.Debug("obj decoder", "warning", w)
		}
		verts, faces = dec.Vertices, dec.Faces()
	case FormatPLY:
		dt, err := readFileWith(path, func(f *os.File) (*ply.Data, error) {
			dt, err := ply.Read(f)
			switch {
			case errors.Is(err, ply.ErrNotPLY):
				return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
			case err != nil:
				return nil, fmt.Errorf("%w: %w", ErrMalformedGeometry, err)
			}
			return dt, nil
		})
		if err != nil {
			return err
		}
		verts, faces = dt.Vertices, dt.Faces
	}
	if len(verts) == 0 || len(faces) == 0 {
		return fmt.Errorf("%w: %q has %d vertices and %d faces", ErrEmptyGeometry, path, len(verts), len(faces))
	}
	ms.vertices, ms.faces = verts, faces

	ms.triangular = true
	for _, fc := range faces {
		if len(fc) != 3 {
			ms.triangular = false
			break
		}
	}
	if !ms.triangular {
		ms.warn(log, "non-triangular mesh; downstream assumes triangles")
	}
	// normals do not change with the centering and scaling in normalize
	ms.vertexNormals, ms.faceNormals = computeNormals(ms.vertices, ms.faces)
	return nil
}

// normalizeVertices centers and scales the vertices, warning about
// any unit conversion.
func (ms *Mesh) normalizeVertices(log *slog.Logger) {
	var applied []unitScale
	ms.normalized, ms.meanPoint, applied = normalize(ms.vertices)
	for _, us := range applied {
		ms.warn(log, us.Units+" detected", "extentY", us.Extent, "scale", us.Factor)
	}
}

// warn records a warning and logs it.
func (ms *Mesh) warn(log *slog.Logger, msg string, args ...any) {
	ms.warnings = append(ms.warnings, msg)
	log.Warn(msg, args...)
}
