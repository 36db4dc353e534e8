// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contents maps texture names to the contents tag of the volume they
// bound. The numeric values are the engine's: EMPTY is the greatest and the
// aggregate contents of a brush without an explicit assignment is the
// numerically greatest tag across its sides.
package contents

import "strings"

// Contents is the tag attached to a brush volume.
type Contents int

const (
	Empty       Contents = -1
	Solid       Contents = -2
	Water       Contents = -3
	Slime       Contents = -4
	Lava        Contents = -5
	Sky         Contents = -6
	Origin      Contents = -7
	Clip        Contents = -8
	Current0    Contents = -9
	Current90   Contents = -10
	Current180  Contents = -11
	Current270  Contents = -12
	CurrentUp   Contents = -13
	CurrentDown Contents = -14
	Translucent Contents = -15
	Hint        Contents = -16
	Null        Contents = -17
	BoundingBox Contents = -19
	BlockLight  Contents = -20
	ToEmpty     Contents = -32
)

var names = map[Contents]string{
	Empty:       "EMPTY",
	Solid:       "SOLID",
	Water:       "WATER",
	Slime:       "SLIME",
	Lava:        "LAVA",
	Sky:         "SKY",
	Origin:      "ORIGIN",
	Clip:        "CLIP",
	Current0:    "CURRENT_0",
	Current90:   "CURRENT_90",
	Current180:  "CURRENT_180",
	Current270:  "CURRENT_270",
	CurrentUp:   "CURRENT_UP",
	CurrentDown: "CURRENT_DOWN",
	Translucent: "TRANSLUCENT",
	Hint:        "HINT",
	Null:        "NULL",
	BoundingBox: "BOUNDINGBOX",
	BlockLight:  "BLOCKLIGHT",
	ToEmpty:     "TOEMPTY",
}

// String returns the engine name of the contents tag.
func (c Contents) String() string {

	if s, ok := names[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsAssignment reports whether the texture name is an assignment side, one
// that locks the aggregate contents of its brush.
func IsAssignment(name string) bool {

	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "content") || strings.HasPrefix(lower, "skip")
}

// ForTexture returns the contents implied by a texture name. The dispatch is
// a case-insensitive prefix match; unrecognised names are SOLID.
func ForTexture(name string) Contents {

	lower := strings.ToLower(name)

	switch {
	case strings.HasPrefix(lower, "contentsolid"):
		return Solid
	case strings.HasPrefix(lower, "contentwater"):
		return Water
	case strings.HasPrefix(lower, "contentempty"):
		return ToEmpty
	case strings.HasPrefix(lower, "contentsky"):
		return Sky
	case strings.HasPrefix(lower, "sky"), strings.HasPrefix(lower, "env_sky"):
		return Sky
	}

	if strings.HasPrefix(lower, "!") {
		switch {
		case strings.HasPrefix(lower, "!cur_90"):
			return Current90
		case strings.HasPrefix(lower, "!cur_0"):
			return Current0
		case strings.HasPrefix(lower, "!cur_270"):
			return Current270
		case strings.HasPrefix(lower, "!cur_180"):
			return Current180
		case strings.HasPrefix(lower, "!cur_up"):
			return CurrentUp
		case strings.HasPrefix(lower, "!cur_dwn"):
			return CurrentDown
		case strings.HasPrefix(lower, "!lava"), strings.HasPrefix(lower, "!!lava"):
			return Lava
		case strings.HasPrefix(lower, "!slime"), strings.HasPrefix(lower, "!!slime"):
			return Slime
		}
		return Water
	}

	switch {
	case strings.HasPrefix(lower, "origin"):
		return Origin
	case strings.HasPrefix(lower, "boundingbox"):
		return BoundingBox
	// bolidhint is a long-tolerated misspelling in shipped maps.
	case strings.HasPrefix(lower, "solidhint"), strings.HasPrefix(lower, "bolidhint"):
		return Null
	case lower == "blocklight":
		return BlockLight
	case strings.HasPrefix(lower, "splitface"):
		return Hint
	case strings.HasPrefix(lower, "hint"), strings.HasPrefix(lower, "skip"):
		return ToEmpty
	case strings.HasPrefix(lower, "translucent"), strings.HasPrefix(lower, "@"):
		return Translucent
	case strings.HasPrefix(lower, "null"), strings.HasPrefix(lower, "bevel"):
		return Null
	}
	return Solid
}
