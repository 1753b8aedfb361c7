// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// unitScale is one step of the unit heuristic in [normalize].
type unitScale struct {

	// Extent is the Y extent that triggered the step.
	Extent float64

	// Threshold is the Y extent above which the step applies.
	Threshold float64

	// Factor is the scale applied.
	Factor float64

	// Units describes the units the mesh was found to use.
	Units string
}

// unitScales are the unit heuristic steps, applied in order. Each
// step re-measures the extent of the already scaled vertices, so
// for large meshes both steps can apply.
var unitScales = []unitScale{
	{Threshold: 100, Factor: 0.01, Units: "centimeters/millimeters"},
	{Threshold: 10, Factor: 0.1, Units: "millimeters/decimeters"},
}

// mean returns the component-wise mean of the given points.
func mean(verts []r3.Vec) r3.Vec {
	var sum r3.Vec
	for _, v := range verts {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1/float64(len(verts)), sum)
}

// extentY returns max(Y) - min(Y) over the given points.
func extentY(verts []r3.Vec) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		lo = min(lo, v.Y)
		hi = max(hi, v.Y)
	}
	return hi - lo
}

// normalize returns a copy of verts centered on their mean point and
// converted to meters with a heuristic on the height (Y axis): meshes
// taller than 100 units are taken to be in cm or mm, and then meshes
// still taller than 10 units in mm or dm. The heuristic can be wrong
// for objects that really are that large. It returns the mean point
// and the scale steps that were applied.
func normalize(verts []r3.Vec) (normalized []r3.Vec, meanPoint r3.Vec, applied []unitScale) {
	meanPoint = mean(verts)
	normalized = make([]r3.Vec, len(verts))
	for i, v := range verts {
		normalized[i] = r3.Sub(v, meanPoint)
	}
	for _, us := range unitScales {
		ext := extentY(normalized)
		if ext <= us.Threshold {
			continue
		}
		for i, v := range normalized {
			normalized[i] = r3.Scale(us.Factor, v)
		}
		us.Extent = ext
		applied = append(applied, us)
	}
	return normalized, meanPoint, applied
}
