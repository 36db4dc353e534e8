// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Winding is an ordered sequence of points forming a convex polygon embedded
// in 3-space. Windings only ever shrink: they are created as a huge quad on
// a plane and then chopped by half-spaces until they realise one bounded face
// of a hull.
type Winding struct {
	Points []mgl64.Vec3
}

// Point side classification used while chopping.
const (
	sideFront = iota
	sideBack
	sideOn
)

// NewWindingFromPlane creates and returns a winding covering the plane
// n·x = dist of the unit normal n out to BogusRange in every direction.
func NewWindingFromPlane(normal mgl64.Vec3, dist float64) *Winding {

	// Pick an axis other than the normal's dominant one as the up hint.
	var up mgl64.Vec3
	switch DominantAxis(normal) {
	case 0, 1:
		up = mgl64.Vec3{0, 0, 1}
	case 2:
		up = mgl64.Vec3{1, 0, 0}
	}
	up = up.Sub(normal.Mul(up.Dot(normal))).Normalize()
	right := up.Cross(normal)

	up = up.Mul(BogusRange)
	right = right.Mul(BogusRange)
	org := normal.Mul(dist)

	return &Winding{Points: []mgl64.Vec3{
		org.Sub(right).Add(up),
		org.Add(right).Add(up),
		org.Add(right).Sub(up),
		org.Sub(right).Sub(up),
	}}
}

// Clone creates and returns a copy of this winding.
func (w *Winding) Clone() *Winding {

	points := make([]mgl64.Vec3, len(w.Points))
	copy(points, w.Points)
	return &Winding{Points: points}
}

// Chop clips this winding against the half-space n·x <= dist. Points within
// eps of the boundary are kept and treated as on-plane. Returns false when
// nothing of the winding remains; the winding is then empty and the caller
// discards the face.
func (w *Winding) Chop(normal mgl64.Vec3, dist float64, eps float64) bool {

	n := len(w.Points)
	dists := make([]float64, n+1)
	sides := make([]int, n+1)
	var counts [3]int

	for i := 0; i < n; i++ {
		d := w.Points[i].Dot(normal) - dist
		dists[i] = d
		switch {
		case d > eps:
			sides[i] = sideFront
		case d < -eps:
			sides[i] = sideBack
		default:
			sides[i] = sideOn
		}
		counts[sides[i]]++
	}
	dists[n] = dists[0]
	sides[n] = sides[0]

	if counts[sideFront] == 0 {
		return true
	}
	if counts[sideBack] == 0 && counts[sideOn] == 0 {
		w.Points = w.Points[:0]
		return false
	}

	clipped := make([]mgl64.Vec3, 0, n+4)
	for i := 0; i < n; i++ {
		p1 := w.Points[i]

		if sides[i] == sideOn {
			clipped = append(clipped, p1)
			continue
		}
		if sides[i] == sideBack {
			clipped = append(clipped, p1)
		}
		if sides[i+1] == sideOn || sides[i+1] == sides[i] {
			continue
		}

		// The edge crosses the boundary: generate the split point.
		p2 := w.Points[(i+1)%n]
		t := dists[i] / (dists[i] - dists[i+1])
		var mid mgl64.Vec3
		for j := 0; j < 3; j++ {
			// Avoid roundoff against axial boundaries.
			switch {
			case normal[j] == 1:
				mid[j] = dist
			case normal[j] == -1:
				mid[j] = -dist
			default:
				mid[j] = p1[j] + t*(p2[j]-p1[j])
			}
		}
		clipped = append(clipped, mid)
	}

	w.Points = clipped
	return len(w.Points) != 0
}

// RemoveColinearPoints drops every vertex whose two incident edges are
// parallel within eps.
func (w *Winding) RemoveColinearPoints(eps float64) {

	n := len(w.Points)
	if n < 3 {
		return
	}
	kept := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		prev := w.Points[(i+n-1)%n]
		cur := w.Points[i]
		next := w.Points[(i+1)%n]

		v1 := next.Sub(cur)
		v2 := cur.Sub(prev)
		l1 := v1.Len()
		l2 := v2.Len()
		if l1 == 0 || l2 == 0 {
			continue
		}
		if v1.Mul(1/l1).Dot(v2.Mul(1/l2)) < 1-eps {
			kept = append(kept, cur)
		}
	}
	w.Points = kept
}

// Area returns the unsigned planar area of this winding.
func (w *Winding) Area() float64 {

	total := 0.0
	for i := 2; i < len(w.Points); i++ {
		d1 := w.Points[i-1].Sub(w.Points[0])
		d2 := w.Points[i].Sub(w.Points[0])
		total += 0.5 * d1.Cross(d2).Len()
	}
	return total
}

// AddToBounds grows bounds to include every point of this winding.
func (w *Winding) AddToBounds(bounds *Bounds) {

	for _, p := range w.Points {
		bounds.ExpandByPoint(p)
	}
}

// MaxDistFromPlane returns the largest absolute distance of any point of
// this winding from the plane n·x = dist.
func (w *Winding) MaxDistFromPlane(normal mgl64.Vec3, dist float64) float64 {

	max := 0.0
	for _, p := range w.Points {
		if d := math.Abs(p.Dot(normal) - dist); d > max {
			max = d
		}
	}
	return max
}
