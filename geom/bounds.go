// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds represents an axis-aligned bounding box defined by the point with
// minimum coordinates and the point with maximum coordinates. The empty box
// has +Inf minimums and -Inf maximums so that any ExpandByPoint makes it
// valid.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBounds creates and returns an empty Bounds.
func NewBounds() Bounds {

	b := Bounds{}
	b.Reset()
	return b
}

// Reset sets this bounding box to empty.
func (b *Bounds) Reset() {

	inf := math.Inf(1)
	b.Min = mgl64.Vec3{inf, inf, inf}
	b.Max = mgl64.Vec3{-inf, -inf, -inf}
}

// Empty reports whether this bounding box contains no points.
func (b *Bounds) Empty() bool {

	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// ExpandByPoint grows this bounding box to include point.
func (b *Bounds) ExpandByPoint(point mgl64.Vec3) {

	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] {
			b.Min[i] = point[i]
		}
		if point[i] > b.Max[i] {
			b.Max[i] = point[i]
		}
	}
}

// Union grows this bounding box to include other.
func (b *Bounds) Union(other Bounds) {

	b.ExpandByPoint(other.Min)
	b.ExpandByPoint(other.Max)
}

// ContainsPoint reports whether this bounding box contains point.
func (b *Bounds) ContainsPoint(point mgl64.Vec3) bool {

	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}
