// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "strings"

// GroupSeparator separates the group (parent directory) name
// from the mesh name in [Mesh.GroupName].
const GroupSeparator = "-"

// splitPath returns the identity strings of the mesh at the given path.
// Both / and \ are path separators, so that paths written on any
// platform give the same names.
func splitPath(path string) (name, groupName, dir string) {
	si := strings.LastIndexAny(path, `/\`)
	file := path[si+1:]
	name = file
	if di := strings.LastIndexByte(file, '.'); di > 0 {
		name = file[:di]
	}
	if si < 0 {
		return name, name, ""
	}
	dir = path[:si]
	group := dir[strings.LastIndexAny(dir, `/\`)+1:]
	if group == "" {
		return name, name, dir
	}
	return name, group + GroupSeparator + name, dir
}
