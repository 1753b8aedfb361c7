// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/mesh/mesh"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for meshinfo.
// It is read from meshinfo.toml or the file given with -config,
// and any flags given override the values in the file.
type Config struct {

	// Mesh is the .obj or .ply mesh file to load.
	Mesh string `posarg:"0"`

	// Gender is the gender of the mesh body.
	Gender mesh.Gender

	// Landmarks is the landmark file to load, if any.
	Landmarks string

	// Segmentation is the cloth segmentation file to load, if any.
	Segmentation string

	// Save is the directory to save the normalized mesh in, if any.
	Save string

	// YAML is whether to print the summary as a YAML document.
	YAML bool `flag:"yaml"`
}

// OnConfig expands a leading ~ in all of the paths in the config.
func (c *Config) OnConfig(cmd string) error {
	for _, p := range []*string{&c.Mesh, &c.Landmarks, &c.Segmentation, &c.Save} {
		if *p == "" {
			continue
		}
		ep, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = ep
	}
	return nil
}
