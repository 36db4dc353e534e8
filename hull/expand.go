// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/contents"
	"github.com/g3n/csg/geom"
)

// clipOffset returns the origin shift that moves a face plane outward so the
// collision box [mins, maxs] just touches it, under the given clip type.
// Floor-ish planes (normal z above floorZ) only rise by the box top under
// precise clipping, which keeps players from floating on slopes.
func clipOffset(ct config.ClipType, normal mgl64.Vec3, mins, maxs mgl64.Vec3, floorZ float64) mgl64.Vec3 {

	var off mgl64.Vec3
	switch ct {
	case config.ClipLegacy, config.ClipNormalized:
		for i := 0; i < 3; i++ {
			if normal[i] > 0 {
				off[i] = normal[i] * maxs[i]
			} else {
				off[i] = normal[i] * -mins[i]
			}
		}
	case config.ClipPrecise:
		if normal[2] > floorZ {
			off[2] = maxs[2]
			break
		}
		fallthrough
	case config.ClipSimple:
		for i := 0; i < 3; i++ {
			if normal[i] > 0 {
				off[i] = maxs[i]
			} else {
				off[i] = mins[i]
			}
		}
	case config.ClipSmallest:
		// The hull planes pass through the original faces.
	}
	return off
}

// addHullPlane resolves the plane through origin with the given normal and
// appends it to the hull's face list unless the hull already carries either
// orientation of that plane.
func (c *Compiler) addHullPlane(hull *Hull, normal, origin mgl64.Vec3, texinfo int, bevel bool) error {

	id, err := c.Planes.FindIntPlane(normal, origin)
	if err != nil {
		return err
	}
	for i := range hull.Faces {
		if hull.Faces[i].PlaneID&^1 == id&^1 {
			return nil
		}
	}
	hull.Faces = append(hull.Faces, Face{
		PlaneID:  id,
		Plane:    c.Planes.Plane(id),
		Texinfo:  texinfo,
		Contents: contents.Empty,
		Bevel:    bevel,
	})
	return nil
}

// findOppositeFace returns the face of hull sharing the edge v0->v1 in the
// reverse direction, or nil. Every interior edge of a closed convex hull has
// exactly one such neighbour.
func findOppositeFace(hull *Hull, v0, v1 mgl64.Vec3, skip int) *Face {

	for j := range hull.Faces {
		if j == skip {
			continue
		}
		w := hull.Faces[j].Winding
		if w == nil {
			continue
		}
		n := len(w.Points)
		for k := 0; k < n; k++ {
			if geom.VecEqual(w.Points[k], v1, geom.EqualEpsilon) &&
				geom.VecEqual(w.Points[(k+1)%n], v0, geom.EqualEpsilon) {
				return &hull.Faces[j]
			}
		}
	}
	return nil
}

// expandBrushBox generates the face planes of hull h as the Minkowski sum of
// the brush's hull 0 with the axis-aligned collision box of hull h. The
// three phases cover the three contact classes: brush face against box
// vertex, brush edge against box edge (the bevel planes), and brush vertex
// against box face.
func (c *Compiler) expandBrushBox(b *Brush, h int) error {

	ct := c.Settings.ClipType
	size := c.Settings.HullSize(h)
	mins, maxs := size.Mins(), size.Maxs()
	floorZ := c.Settings.FloorZ

	hull0 := &b.Hulls[0]
	hull := &b.Hulls[h]
	hull.Faces = nil
	hull.Bounds.Reset()

	// Axial sides where a bevel hint suppresses Phase 3 expansion, indexed
	// by axial plane type and side (0 negative, 1 positive).
	var axialbevel [3][2]bool

	// Phase 1: brush face against box vertex. Axial faces are left to
	// Phase 3; an axial bevel face only records suppression.
	for i := range hull0.Faces {
		f := &hull0.Faces[i]
		p := f.Plane
		if p.Type.Axial() {
			if f.Bevel {
				side := 0
				if p.Normal[p.Type.Axis()] > 0 {
					side = 1
				}
				axialbevel[p.Type.Axis()][side] = true
			}
			continue
		}
		origin := p.Origin
		if !f.Bevel {
			origin = origin.Add(clipOffset(ct, p.Normal, mins, maxs, floorZ))
		}
		if err := c.addHullPlane(hull, p.Normal, origin, f.Texinfo, f.Bevel); err != nil {
			return brushError(ErrCapacity, b, "%v", err)
		}
	}

	// Phase 2: brush edge against box edge. Wherever two adjacent faces'
	// normals change sign along an axis, a bevel plane rounds the outside
	// corner off so a sliding box cannot catch on it.
	if ct == config.ClipSimple || ct == config.ClipNormalized || ct == config.ClipPrecise {
		warned := false
		for i := range hull0.Faces {
			f := &hull0.Faces[i]
			w := f.Winding
			if w == nil {
				continue
			}
			n := len(w.Points)
			for e := 0; e < n; e++ {
				v0 := w.Points[e]
				v1 := w.Points[(e+1)%n]

				opp := findOppositeFace(hull0, v0, v1, i)
				if opp == nil {
					if h == 1 && !warned {
						c.log.BrushWarn(b.OriginalEntity, b.OriginalBrush, "edge without opposite face")
						warned = true
					}
					continue
				}

				for dir := 0; dir < 3; dir++ {
					if f.Plane.Normal[dir]*opp.Plane.Normal[dir] >= -geom.NormalEpsilon {
						continue
					}
					edge := v1.Sub(v0)
					var edir mgl64.Vec3
					if f.Plane.Normal[dir] > 0 {
						edir[dir] = -1
					} else {
						edir[dir] = 1
					}
					bn := edge.Cross(edir)
					if bn.Len() < geom.NormalEpsilon {
						continue
					}
					bn = bn.Normalize()
					a1 := (dir + 1) % 3
					a2 := (dir + 2) % 3
					if math.Abs(bn[a1]) <= geom.NormalEpsilon || math.Abs(bn[a2]) <= geom.NormalEpsilon {
						// Effectively axial: Phase 3 covers it.
						continue
					}
					origin := v0.Add(clipOffset(ct, bn, mins, maxs, floorZ))
					if err := c.addHullPlane(hull, bn, origin, -1, false); err != nil {
						return brushError(ErrCapacity, b, "%v", err)
					}
				}
			}
		}
	}

	// Phase 3: brush vertex against box face, the six bounding planes of
	// bounds(hull0) expanded by the box. A recorded bevel hint keeps the
	// corresponding side unexpanded.
	if hull0.Bounds.Empty() {
		return nil
	}
	for axis := 0; axis < 3; axis++ {
		for side := 0; side < 2; side++ {
			var normal, origin mgl64.Vec3
			if side == 1 {
				normal[axis] = 1
				origin = hull0.Bounds.Max
				if !axialbevel[axis][1] {
					origin[axis] += maxs[axis]
				}
			} else {
				normal[axis] = -1
				origin = hull0.Bounds.Min
				if !axialbevel[axis][0] {
					origin[axis] += mins[axis]
				}
			}
			if err := c.addHullPlane(hull, normal, origin, -1, false); err != nil {
				return brushError(ErrCapacity, b, "%v", err)
			}
		}
	}
	return nil
}
