// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshinfo loads a mesh with optional landmark and cloth
// segmentation files, prints a summary of it, and optionally saves
// the normalized mesh.
package main

import "cogentcore.org/core/cli"

func options() *cli.Options {
	opts := cli.DefaultOptions("meshinfo", "Meshinfo loads a mesh and prints a summary of it.")
	opts.PrintSuccess = false
	return opts
}

func main() {
	cli.Run(options(), &Config{}, Info)
}
