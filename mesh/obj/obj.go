// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This package is based extensively on https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj is used to parse and write the geometry of the Wavefront
// OBJ file format (*.obj). Only vertex positions and polygon faces are
// used; normals and texture coordinates are parsed so that face indices
// can be validated, and materials are ignored.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Decoder contains all decoded data from an obj file.
type Decoder struct {
	Objects  []Object     // decoded objects
	Vertices []r3.Vec     // vertices positions
	Normals  []r3.Vec     // vertices normals
	Uvs      [][2]float64 // vertices texture coordinates
	Warnings []string     // warning messages

	line          uint    // current line number
	objCurrent    *Object // current object
	matCurrent    string  // current material name
	smoothCurrent bool    // current smooth state
}

// Object contains all information about one decoded object
type Object struct {
	Name  string // Object name
	Faces []Face // Faces
}

// Face contains all information about an object face
type Face struct {
	Vertices []int  // Indices to the face vertices
	Uvs      []int  // Indices to the face UV coordinates
	Normals  []int  // Indices to the face normals
	Material string // Material name
	Smooth   bool   // Smooth face

	line uint // line the face was declared on
}

// Local constants
const (
	blanks   = "\r\n\t "
	invINDEX = -1
	objType  = "obj"
)

// NewDecoder returns a new, empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{line: 1}
}

// Decode reads an obj file from the given reader and returns the decoder
// holding its data.
func Decode(r io.Reader) (*Decoder, error) {
	dec := NewDecoder()
	if err := dec.Decode(r); err != nil {
		return nil, err
	}
	return dec, nil
}

// Decode reads the given data and decodes into the Decoder.
// Every face index is checked against the parsed data once the
// whole file has been read, so faces may reference vertices
// declared later in the file.
func (dec *Decoder) Decode(r io.Reader) error {
	if r == nil {
		return errors.New("obj.Decoder: no reader passed")
	}
	err := dec.parse(r, dec.parseObjLine)
	if err != nil {
		return err
	}
	return dec.checkIndexes()
}

// NumFaces returns the total number of faces over all objects.
func (dec *Decoder) NumFaces() int {
	n := 0
	for oi := range dec.Objects {
		n += len(dec.Objects[oi].Faces)
	}
	return n
}

// Faces returns the vertex indices of every face of every object,
// in file order, as zero-based indices into [Decoder.Vertices].
func (dec *Decoder) Faces() [][]int {
	fcs := make([][]int, 0, dec.NumFaces())
	for oi := range dec.Objects {
		for _, fc := range dec.Objects[oi].Faces {
			fcs = append(fcs, fc.Vertices)
		}
	}
	return fcs
}

func (dec *Decoder) checkIndexes() error {
	nv, nt, nn := len(dec.Vertices), len(dec.Uvs), len(dec.Normals)
	for oi := range dec.Objects {
		for _, fc := range dec.Objects[oi].Faces {
			for pos, vi := range fc.Vertices {
				if vi < 0 || vi >= nv {
					return fmt.Errorf("Face vertex index %d out of range [1, %d] in line:%d", vi+1, nv, fc.line)
				}
				if ti := fc.Uvs[pos]; ti != invINDEX && (ti < 0 || ti >= nt) {
					return fmt.Errorf("Face uv index %d out of range [1, %d] in line:%d", ti+1, nt, fc.line)
				}
				if ni := fc.Normals[pos]; ni != invINDEX && (ni < 0 || ni >= nn) {
					return fmt.Errorf("Face normal index %d out of range [1, %d] in line:%d", ni+1, nn, fc.line)
				}
			}
		}
	}
	return nil
}

// parse reads the lines from the specified reader and dispatch them
// to the specified line parser.
func (dec *Decoder) parse(reader io.Reader, parseLine func(string) error) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		// Parses the line
		line = strings.Trim(line, blanks)
		perr := parseLine(line)
		if perr != nil {
			return perr
		}
		// If EOF ends of parsing.
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

// Parses obj file line, dispatching to specific parsers
func (dec *Decoder) parseObjLine(line string) error {
	// Ignore empty lines
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	// Ignore comment lines
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	// Object name
	case "o":
		return dec.parseObject(fields[1:])
	// Group names. We are considering "group" the same as "object"
	// This may not be right
	case "g":
		return dec.parseObject(fields[1:])
	// Vertex coordinate
	case "v":
		return dec.parseVertex(fields[1:])
	// Vertex normal coordinate
	case "vn":
		return dec.parseNormal(fields[1:])
	// Vertex texture coordinate
	case "vt":
		return dec.parseTex(fields[1:])
	// Face vertex
	case "f":
		return dec.parseFace(fields[1:])
	// Use material
	case "usemtl":
		return dec.parseUsemtl(fields[1:])
	// Smooth
	case "s":
		return dec.parseSmooth(fields[1:])
	// Materials are not loaded
	case "mtllib":
		return nil
	default:
		dec.appendWarn(objType, "field not supported: "+ltype)
	}
	return nil
}

// Parses an object line:
// o <name>
func (dec *Decoder) parseObject(fields []string) error {
	name := ""
	if len(fields) > 0 {
		name = fields[0]
	}
	dec.Objects = append(dec.Objects, Object{Name: name})
	dec.objCurrent = &dec.Objects[len(dec.Objects)-1]
	return nil
}

func (dec *Decoder) parseFloats(fields []string, n int, what string) ([3]float64, error) {
	var vals [3]float64
	if len(fields) < n {
		return vals, dec.formatError(fmt.Sprintf("Less than %d values in '%s' line", n, what))
	}
	for i, f := range fields[:n] {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return vals, dec.formatError(fmt.Sprintf("'%s' parse float error: %v", what, err))
		}
		vals[i] = val
	}
	return vals, nil
}

// Parses a vertex position line
// v <x> <y> <z> [w]
func (dec *Decoder) parseVertex(fields []string) error {
	v, err := dec.parseFloats(fields, 3, "v")
	if err != nil {
		return err
	}
	dec.Vertices = append(dec.Vertices, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	return nil
}

// Parses a vertex normal line
// vn <x> <y> <z>
func (dec *Decoder) parseNormal(fields []string) error {
	v, err := dec.parseFloats(fields, 3, "vn")
	if err != nil {
		return err
	}
	dec.Normals = append(dec.Normals, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	return nil
}

// Parses a vertex texture coordinate line:
// vt <u> <v> <w>
func (dec *Decoder) parseTex(fields []string) error {
	v, err := dec.parseFloats(fields, 2, "vt")
	if err != nil {
		return err
	}
	dec.Uvs = append(dec.Uvs, [2]float64{v[0], v[1]})
	return nil
}

// parseIndex parses one component of a face field, resolving
// negative indices relative to the count of items parsed so far.
func (dec *Decoder) parseIndex(s string, count int, what string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, dec.formatError(fmt.Sprintf("Face %s index parse error: %v", what, err))
	}
	switch {
	// Positive index is an absolute index
	case val > 0:
		return int(val - 1), nil
	// Negative index is relative to the last parsed item
	case val < 0:
		return count + int(val), nil
	}
	// Index could never be 0
	return 0, dec.formatError(fmt.Sprintf("Face %s index value equal to 0", what))
}

// parseFace parses a face decription line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *Decoder) parseFace(fields []string) error {
	if dec.objCurrent == nil {
		// if a face line is encountered before a group (g) or object (o),
		// create a new "default" object. This 'handles' the case when
		// a g or o line is not specified (allowed in OBJ format)
		dec.parseObject([]string{fmt.Sprintf("unnamed%d", dec.line)})
	}

	if len(fields) < 3 {
		return dec.formatError("Face line with less 3 fields")
	}
	face := Face{
		Vertices: make([]int, len(fields)),
		Uvs:      make([]int, len(fields)),
		Normals:  make([]int, len(fields)),
		Material: dec.matCurrent,
		Smooth:   dec.smoothCurrent,
		line:     dec.line,
	}

	for pos, f := range fields {
		// Separate the current field in its components: v vt vn
		vfields := strings.Split(f, "/")

		// Get the index of this vertex position (must always exist)
		vi, err := dec.parseIndex(vfields[0], len(dec.Vertices), "vertex")
		if err != nil {
			return err
		}
		face.Vertices[pos] = vi

		// Get the index of this vertex UV coordinate (optional)
		face.Uvs[pos] = invINDEX
		if len(vfields) > 1 && len(vfields[1]) > 0 {
			ti, err := dec.parseIndex(vfields[1], len(dec.Uvs), "uv")
			if err != nil {
				return err
			}
			face.Uvs[pos] = ti
		}

		// Get the index of this vertex normal (optional)
		face.Normals[pos] = invINDEX
		if len(vfields) >= 3 && len(vfields[2]) > 0 {
			ni, err := dec.parseIndex(vfields[2], len(dec.Normals), "normal")
			if err != nil {
				return err
			}
			face.Normals[pos] = ni
		}
	}
	// Appends this face to the current object
	dec.objCurrent.Faces = append(dec.objCurrent.Faces, face)
	return nil
}

// parseUsemtl parses a "usemtl" decription line:
// usemtl <name>
func (dec *Decoder) parseUsemtl(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("Usemtl with no fields")
	}
	dec.matCurrent = fields[0]
	return nil
}

// parseSmooth parses a "s" decription line:
// s <0|1>
func (dec *Decoder) parseSmooth(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("'s' with no fields")
	}

	switch fields[0] {
	case "0", "off":
		dec.smoothCurrent = false
		return nil
	case "1", "on":
		dec.smoothCurrent = true
		return nil
	}
	// smoothing group numbers other than 0/1 are common in exporters
	if _, err := strconv.Atoi(fields[0]); err == nil {
		dec.smoothCurrent = true
		return nil
	}
	return dec.formatError("'s' with invalid value")
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("%s in line:%d", msg, dec.line)
}

func (dec *Decoder) appendWarn(ftype string, msg string) {
	wline := fmt.Sprintf("%s(%d): %s", ftype, dec.line, msg)
	dec.Warnings = append(dec.Warnings, wline)
}
