// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cogentcore.org/mesh/mesh/obj"
)

// SaveFilename returns the file that [Mesh.Save] writes in the given directory.
func (ms *Mesh) SaveFilename(dir string) string {
	return filepath.Join(dir, ms.groupName+"_normalized.obj")
}

// Save writes the normalized vertices and the faces as an .obj file
// named by [Mesh.SaveFilename] in the given directory.
// The file is removed if it cannot be written completely.
func (ms *Mesh) Save(dir string) (err error) {
	fname := ms.SaveFilename(dir)
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
		if err != nil {
			os.Remove(fname)
		}
	}()
	if err := ms.WriteOBJ(f); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

// WriteOBJ writes the normalized vertices and the faces in the obj format.
func (ms *Mesh) WriteOBJ(w io.Writer) error {
	enc := obj.NewEncoder(w)
	enc.Comment = ms.groupName + " normalized"
	if err := enc.Encode(ms.normalized, ms.faces); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
