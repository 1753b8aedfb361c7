// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"strings"
)

// Format is a supported mesh file format.
type Format int32 //enums:enum -trim-prefix Format -transform lower

const (
	// FormatOBJ is the Wavefront .obj format.
	FormatOBJ Format = iota

	// FormatPLY is the Stanford .ply format.
	FormatPLY
)

// FormatFromPath returns the Format for the extension of the given
// file path (case-insensitive), or an [ErrUnsupportedFormat] error.
func FormatFromPath(path string) (Format, error) {
	ext := ""
	base := path[strings.LastIndexAny(path, `/\`)+1:]
	if di := strings.LastIndexByte(base, '.'); di >= 0 {
		ext = strings.ToLower(base[di+1:])
	}
	var f Format
	if ext == "" || f.SetString(ext) != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return f, nil
}
