// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Gender is the gender tag of the body a mesh represents.
type Gender int32 //enums:enum -transform lower -accept-lower

const (
	// Unknown is the default when no gender is given.
	Unknown Gender = iota

	// Female is a female body.
	Female

	// Male is a male body.
	Male
)

// ParseGender returns the Gender with the given case-insensitive name.
// The empty string is [Unknown].
func ParseGender(s string) (Gender, error) {
	var g Gender
	if s == "" {
		return g, nil
	}
	err := g.SetString(s)
	return g, err
}
