// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the computational geometry primitives used by the
// clip-hull compiler: canonical planes, convex windings and axis-aligned
// bounding boxes, all over mgl64 3-vectors.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerances used throughout the compiler. DistEpsilon and DirEpsilon govern
// plane de-duplication; OnEpsilon is the generic on-plane band; NormalEpsilon
// is the axial probe; EqualEpsilon compares vertices and coplanar faces.
const (
	NormalEpsilon = 0.00001
	OnEpsilon     = 0.04
	EqualEpsilon  = 0.001
	DirEpsilon    = 0.0001
	DistEpsilon   = 0.04
)

// BogusRange is a distance safely beyond any representable world coordinate.
// Base windings are built at this size so that chopping them against world
// geometry can never clip a legitimate vertex away.
const BogusRange = 144000.0

// VecEqual reports whether every component of a and b is within eps.
func VecEqual(a, b mgl64.Vec3, eps float64) bool {

	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// DominantAxis returns the index of the component of v with the greatest
// magnitude.
func DominantAxis(v mgl64.Vec3) int {

	axis := 0
	max := math.Abs(v[0])
	for i := 1; i < 3; i++ {
		if math.Abs(v[i]) > max {
			max = math.Abs(v[i])
			axis = i
		}
	}
	return axis
}
