// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlaneType classifies a plane by its normal: the three axial types first,
// then the non-axial types by dominant axis. The integer values of the axial
// types are their axis indices; code indexing tables by axis relies on that.
type PlaneType int

const (
	PlaneX PlaneType = iota
	PlaneY
	PlaneZ
	PlaneAnyX
	PlaneAnyY
	PlaneAnyZ
)

// Axial reports whether the plane type is one of the three axis-aligned types.
func (t PlaneType) Axial() bool {

	return t <= PlaneZ
}

// Axis returns the dominant axis index for this plane type.
func (t PlaneType) Axis() int {

	return int(t) % 3
}

// Plane represents a supporting plane by its unit normal and signed distance
// from the world origin. Origin is a point on the plane and is retained so
// that offset copies of the plane can recompute Dist exactly.
type Plane struct {
	Normal mgl64.Vec3
	Origin mgl64.Vec3
	Dist   float64
	Type   PlaneType
}

// PlaneTypeForNormal classifies a unit normal.
func PlaneTypeForNormal(n mgl64.Vec3) PlaneType {

	if math.Abs(n[0]) >= 1-NormalEpsilon {
		return PlaneX
	}
	if math.Abs(n[1]) >= 1-NormalEpsilon {
		return PlaneY
	}
	if math.Abs(n[2]) >= 1-NormalEpsilon {
		return PlaneZ
	}
	return PlaneAnyX + PlaneType(DominantAxis(n))
}

// NewPlane builds a canonical plane from a (not necessarily unit) normal and
// a point on the plane: the normal is unit-normalised, axial normals are
// snapped exactly onto their axis, and Dist is recomputed from origin.
// Returns ok == false when the normal is degenerate.
func NewPlane(normal, origin mgl64.Vec3) (Plane, bool) {

	l := normal.Len()
	if l < NormalEpsilon {
		return Plane{}, false
	}
	n := normal.Mul(1 / l)
	t := PlaneTypeForNormal(n)
	if t.Axial() {
		snapped := mgl64.Vec3{}
		if n[t.Axis()] > 0 {
			snapped[t.Axis()] = 1
		} else {
			snapped[t.Axis()] = -1
		}
		n = snapped
	}
	return Plane{
		Normal: n,
		Origin: origin,
		Dist:   n.Dot(origin),
		Type:   t,
	}, true
}

// Flipped returns the plane with negated normal and distance. Origin is a
// point on both orientations and is kept.
func (p Plane) Flipped() Plane {

	return Plane{
		Normal: p.Normal.Mul(-1),
		Origin: p.Origin,
		Dist:   -p.Dist,
		Type:   p.Type,
	}
}

// DistanceTo returns the signed distance of point from the plane.
func (p *Plane) DistanceTo(point mgl64.Vec3) float64 {

	return p.Normal.Dot(point) - p.Dist
}
