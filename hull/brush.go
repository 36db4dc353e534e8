// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hull implements the clip-hull construction core of the compiler:
// per-brush contents classification, hull 0 reconstruction from side planes,
// and the Minkowski expansion of hulls 1..NumHulls-1 against box or custom
// collision shapes.
package hull

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/contents"
	"github.com/g3n/csg/geom"
)

// TextureDef describes the texture applied to one brush side: the name and
// the UV projection basis. Only the name is consulted by this package; the
// rest is carried through to the texture writer.
type TextureDef struct {
	Name   string
	UAxis  mgl64.Vec3
	VAxis  mgl64.Vec3
	Shift  [2]float64
	Scale  [2]float64
	Rotate float64
}

// Side is one parsed brush side: three points defining the plane in world
// space, the texture descriptor, and the bevel hint.
type Side struct {
	Planepts [3]mgl64.Vec3
	Texture  TextureDef
	Bevel    bool
}

// Face is one bounded face of a brush hull. Winding is nil until the face is
// realised; Texinfo is -1 for faces with no texture (bevel and bounding
// planes).
type Face struct {
	PlaneID  int
	Plane    *geom.Plane
	Winding  *geom.Winding
	Texinfo  int
	Contents contents.Contents
	Bevel    bool
}

// Hull is the boundary geometry of a brush at one collision size: a face
// list and the bounds of the realised windings.
type Hull struct {
	Faces  []Face
	Bounds geom.Bounds
}

// Brush is one parsed source brush and its compiled hulls.
type Brush struct {
	// Entity is the index of the owning entity; OriginalEntity and
	// OriginalBrush are the pre-expansion indices used in diagnostics.
	Entity         int
	OriginalEntity int
	OriginalBrush  int

	Sides []Side

	// ClipHull is a bitmask of the collision hulls a clip-only brush
	// contributes to; zero for ordinary brushes.
	ClipHull int
	NoClip   bool

	// Bevel forces every side of the brush to be treated as a bevel hint.
	Bevel bool

	// HullShapes holds per-hull hull-shape name overrides.
	HullShapes [config.NumHulls]string

	Contents contents.Contents
	Hulls    [config.NumHulls]Hull
}

// Entity is the key-value store of one map entity.
type Entity struct {
	Keys map[string]string
}

// ClassName returns the entity's classname key.
func (e *Entity) ClassName() string {

	return e.Keys["classname"]
}

// IntKey returns the integer value of the specified key, or 0 when the key
// is absent or malformed.
func (e *Entity) IntKey(key string) int {

	var v int
	fmt.Sscanf(e.Keys[key], "%d", &v)
	return v
}

// Vec3Key returns the 3-vector value of the specified key, or the zero
// vector when the key is absent or malformed.
func (e *Entity) Vec3Key(key string) mgl64.Vec3 {

	var v mgl64.Vec3
	fmt.Sscanf(e.Keys[key], "%f %f %f", &v[0], &v[1], &v[2])
	return v
}
