// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"cogentcore.org/mesh/mesh"
	"gopkg.in/yaml.v3"
)

// Info loads the mesh and prints a summary of it.
func Info(c *Config) error {
	return info(os.Stdout, c)
}

func info(w io.Writer, c *Config) error {
	ms, err := mesh.Load(c.Mesh, mesh.Options{
		Gender:           c.Gender,
		LandmarksPath:    c.Landmarks,
		SegmentationPath: c.Segmentation,
	})
	if err != nil {
		return err
	}
	slog.Info("loaded mesh", "name", ms.Name(), "vertices", ms.NumVertices(), "faces", ms.NumFaces())
	sm := newSummary(ms)
	if c.Save != "" {
		if err := ms.Save(c.Save); err != nil {
			return err
		}
		sm.Saved = ms.SaveFilename(c.Save)
	}
	if c.YAML {
		return sm.writeYAML(w)
	}
	sm.writeText(w)
	return nil
}

// summary is what meshinfo reports about a loaded mesh.
type summary struct {
	Mesh       string                `yaml:"mesh"`
	Gender     mesh.Gender           `yaml:"gender"`
	Vertices   int                   `yaml:"vertices"`
	Faces      int                   `yaml:"faces"`
	Triangular bool                  `yaml:"triangular"`
	MeanPoint  [3]float64            `yaml:"meanPoint,flow"`
	Segmented  bool                  `yaml:"segmented"`
	Landmarks  map[string][3]float64 `yaml:"landmarks,omitempty"`
	Warnings   []string              `yaml:"warnings,omitempty"`
	Saved      string                `yaml:"saved,omitempty"`
}

func newSummary(ms *mesh.Mesh) *summary {
	mp := ms.MeanPoint()
	sm := &summary{
		Mesh:       ms.GroupName(),
		Gender:     ms.Gender(),
		Vertices:   ms.NumVertices(),
		Faces:      ms.NumFaces(),
		Triangular: ms.IsTriangular(),
		MeanPoint:  [3]float64{mp.X, mp.Y, mp.Z},
		Segmented:  ms.IsSegmented(),
		Warnings:   ms.Warnings(),
	}
	for nm, lm := range ms.Landmarks() {
		if sm.Landmarks == nil {
			sm.Landmarks = map[string][3]float64{}
		}
		sm.Landmarks[nm] = [3]float64{lm.X, lm.Y, lm.Z}
	}
	return sm
}

func (sm *summary) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sm); err != nil {
		return err
	}
	return enc.Close()
}

func (sm *summary) writeText(w io.Writer) {
	fmt.Fprintf(w, "mesh:        %s\n", sm.Mesh)
	fmt.Fprintf(w, "gender:      %s\n", sm.Gender)
	fmt.Fprintf(w, "vertices:    %d\n", sm.Vertices)
	fmt.Fprintf(w, "faces:       %d\n", sm.Faces)
	fmt.Fprintf(w, "triangular:  %t\n", sm.Triangular)
	fmt.Fprintf(w, "mean point:  %g %g %g\n", sm.MeanPoint[0], sm.MeanPoint[1], sm.MeanPoint[2])
	fmt.Fprintf(w, "segmented:   %t\n", sm.Segmented)
	for _, nm := range slices.Sorted(maps.Keys(sm.Landmarks)) {
		lm := sm.Landmarks[nm]
		fmt.Fprintf(w, "landmark:    %s %g %g %g\n", nm, lm[0], lm[1], lm[2])
	}
	for _, wn := range sm.Warnings {
		fmt.Fprintf(w, "warning:     %s\n", wn)
	}
	if sm.Saved != "" {
		fmt.Fprintf(w, "saved:       %s\n", sm.Saved)
	}
}
