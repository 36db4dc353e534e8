// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/g3n/csg/geom"
)

// hullBrushFace is one face of a precomputed convex collision shape.
type hullBrushFace struct {
	Normal   mgl64.Vec3
	Point    mgl64.Vec3
	Vertices []mgl64.Vec3
}

// hullBrushEdge is one edge of a collision shape together with the normals
// of its two adjacent faces.
type hullBrushEdge struct {
	Vertexes [2]mgl64.Vec3
	Point    mgl64.Vec3
	Delta    mgl64.Vec3
	Normals  [2]mgl64.Vec3
}

// hullBrush is a convex collision shape prepared as a Minkowski operand:
// faces, edges and the deduplicated vertex set.
type hullBrush struct {
	Faces    []hullBrushFace
	Edges    []hullBrushEdge
	Vertices []mgl64.Vec3
}

// clone returns a deep copy of the hull brush.
func (hb *hullBrush) clone() *hullBrush {

	out := &hullBrush{
		Faces:    make([]hullBrushFace, len(hb.Faces)),
		Edges:    append([]hullBrushEdge(nil), hb.Edges...),
		Vertices: append([]mgl64.Vec3(nil), hb.Vertices...),
	}
	for i, f := range hb.Faces {
		out.Faces[i] = f
		out.Faces[i].Vertices = append([]mgl64.Vec3(nil), f.Vertices...)
	}
	return out
}

// createHullBrush builds a convex collision shape from the sides of an
// info_hullshape brush: canonical planes, per-plane windings, the edge list
// with adjacent-face normals, and the vertex set. The brush must be a closed
// convex solid; anything else is fatal.
func (c *Compiler) createHullBrush(b *Brush) (*hullBrush, error) {

	var planes []geom.Plane
	offgrid := false

	for si := range b.Sides {
		side := &b.Sides[si]
		for _, pt := range side.Planepts {
			for i := 0; i < 3; i++ {
				if math.Abs(pt[i]-math.Round(pt[i])) > geom.NormalEpsilon && !offgrid {
					c.log.BrushWarn(b.OriginalEntity, b.OriginalBrush, "hull shape vertex slightly off grid")
					offgrid = true
				}
			}
		}
		normal := side.Planepts[0].Sub(side.Planepts[1]).Cross(side.Planepts[2].Sub(side.Planepts[1]))
		plane, ok := geom.NewPlane(normal, side.Planepts[0])
		if !ok {
			return nil, sideError(ErrGeometry, b, si, "invalid brush: plane with no normal")
		}
		for _, prev := range planes {
			if geom.VecEqual(prev.Normal, plane.Normal, geom.DirEpsilon) &&
				math.Abs(prev.Normal.Dot(plane.Origin)-prev.Dist) < geom.DistEpsilon {
				return nil, sideError(ErrGeometry, b, si, "invalid brush: coplanar faces")
			}
		}
		planes = append(planes, plane)
	}

	hb := &hullBrush{}

	// Realise one winding per plane by clipping it to every other plane's
	// inner half-space.
	for i := range planes {
		w := geom.NewWindingFromPlane(planes[i].Normal, planes[i].Dist)
		for j := range planes {
			if j == i {
				continue
			}
			if !w.Chop(planes[j].Normal, planes[j].Dist, geom.OnEpsilon) {
				return nil, brushError(ErrGeometry, b, "invalid brush: face clipped away")
			}
		}
		w.RemoveColinearPoints(geom.OnEpsilon)
		if len(w.Points) < 3 {
			return nil, brushError(ErrGeometry, b, "invalid brush: degenerate face")
		}
		hb.Faces = append(hb.Faces, hullBrushFace{
			Normal:   planes[i].Normal,
			Point:    w.Points[0],
			Vertices: w.Points,
		})
	}

	// Pair each face edge with its reverse neighbour on another plane; the
	// edge is kept once, from the lower-indexed plane.
	for i := range hb.Faces {
		fi := &hb.Faces[i]
		n := len(fi.Vertices)
		for e := 0; e < n; e++ {
			v0 := fi.Vertices[e]
			v1 := fi.Vertices[(e+1)%n]

			neighbor := -1
			for j := range hb.Faces {
				if j == i {
					continue
				}
				fj := &hb.Faces[j]
				m := len(fj.Vertices)
				for k := 0; k < m; k++ {
					if geom.VecEqual(fj.Vertices[k], v1, geom.EqualEpsilon) &&
						geom.VecEqual(fj.Vertices[(k+1)%m], v0, geom.EqualEpsilon) {
						neighbor = j
						break
					}
				}
				if neighbor >= 0 {
					break
				}
			}
			if neighbor < 0 {
				return nil, brushError(ErrGeometry, b, "invalid brush: edge without opposite face")
			}
			for _, v := range [2]mgl64.Vec3{v0, v1} {
				if math.Abs(planes[i].DistanceTo(v)) > geom.NormalEpsilon ||
					math.Abs(planes[neighbor].DistanceTo(v)) > geom.NormalEpsilon {
					return nil, brushError(ErrGeometry, b, "invalid brush: edge vertex off plane")
				}
			}
			if neighbor > i {
				hb.Edges = append(hb.Edges, hullBrushEdge{
					Vertexes: [2]mgl64.Vec3{v0, v1},
					Point:    v0,
					Delta:    v1.Sub(v0),
					Normals:  [2]mgl64.Vec3{hb.Faces[i].Normal, hb.Faces[neighbor].Normal},
				})
			}
		}
	}

	// Deduplicated vertex set, validated against every plane: a vertex may
	// lie on a plane or inside it, never outside.
	for i := range hb.Faces {
		for _, v := range hb.Faces[i].Vertices {
			dup := false
			for _, seen := range hb.Vertices {
				if geom.VecEqual(seen, v, geom.EqualEpsilon) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			for j := range planes {
				if planes[j].DistanceTo(v) > geom.NormalEpsilon {
					return nil, brushError(ErrGeometry, b, "invalid brush: vertex outside face plane")
				}
			}
			hb.Vertices = append(hb.Vertices, v)
		}
	}

	return hb, nil
}

// expandBrushShape generates the face planes of hull h as the Minkowski sum
// of the brush's hull 0 with an arbitrary convex collision shape. The same
// three contact classes as the box expansion apply, with the shape's support
// vertices, edges and faces in place of the box's.
func (c *Compiler) expandBrushShape(b *Brush, h int, hb *hullBrush) error {

	hull0 := &b.Hulls[0]
	hull := &b.Hulls[h]
	hull.Faces = nil
	hull.Bounds.Reset()

	// Shape faces whose Phase 3 plane must not be offset because the
	// coplanar brush face carried a bevel hint.
	suppress := make([]bool, len(hb.Faces))

	// Phase 1: brush face against shape vertex. A brush face coplanar with
	// a shape face is emitted by Phase 3 instead.
	for i := range hull0.Faces {
		f := &hull0.Faces[i]
		n := f.Plane.Normal

		coplanar := -1
		for si := range hb.Faces {
			sf := &hb.Faces[si]
			if !geom.VecEqual(sf.Normal, n.Mul(-1), geom.EqualEpsilon) {
				continue
			}
			flat := true
			ref := sf.Vertices[0].Dot(n)
			for _, v := range sf.Vertices[1:] {
				if math.Abs(v.Dot(n)-ref) > geom.EqualEpsilon {
					flat = false
					break
				}
			}
			if flat {
				coplanar = si
				break
			}
		}
		if coplanar >= 0 {
			if f.Bevel {
				suppress[coplanar] = true
			}
			continue
		}

		// Support vertex of the shape in direction -n.
		best := hb.Vertices[0]
		bestd := best.Dot(n)
		for _, v := range hb.Vertices[1:] {
			if d := v.Dot(n); d < bestd {
				best, bestd = v, d
			}
		}
		origin := f.Plane.Origin
		if !f.Bevel {
			origin = origin.Sub(best)
		}
		if err := c.addHullPlane(hull, n, origin, f.Texinfo, f.Bevel); err != nil {
			return brushError(ErrCapacity, b, "%v", err)
		}
	}

	// Phase 2: brush edge against shape edge.
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

			// Straighten the edge direction: the exact edge of the two
			// adjacent planes is along their normals' cross product.
			delta := v1.Sub(v0)
			cr := f.Plane.Normal.Cross(opp.Plane.Normal)
			if cr.Len() > geom.NormalEpsilon {
				if cr.Dot(delta) < 0 {
					cr = cr.Mul(-1)
				}
				delta = cr.Normalize().Mul(delta.Len())
			}
			if delta.Len() < geom.NormalEpsilon {
				continue
			}
			normals := [2]mgl64.Vec3{f.Plane.Normal, opp.Plane.Normal}

			for se := range hb.Edges {
				sedge := &hb.Edges[se]
				if sedge.Delta.Dot(normals[0]) <= geom.OnEpsilon ||
					sedge.Delta.Dot(normals[1]) >= -geom.OnEpsilon ||
					delta.Dot(sedge.Normals[0]) <= geom.OnEpsilon ||
					delta.Dot(sedge.Normals[1]) >= -geom.OnEpsilon {
					continue
				}
				bn := delta.Normalize().Cross(sedge.Delta.Normalize())
				if bn.Len() < geom.NormalEpsilon {
					continue
				}
				bn = bn.Normalize()
				origin := v0.Sub(sedge.Point)
				if err := c.addHullPlane(hull, bn, origin, -1, false); err != nil {
					return brushError(ErrCapacity, b, "%v", err)
				}
			}
		}
	}

	// Phase 3: shape face against brush vertex. An empty hull 0 leaves
	// nothing to support the shape planes.
	if len(hull0.Faces) == 0 {
		return nil
	}
	for si := range hb.Faces {
		sf := &hb.Faces[si]

		bestd := math.Inf(1)
		var best mgl64.Vec3
		texinfo := -1
		for i := range hull0.Faces {
			w := hull0.Faces[i].Winding
			if w == nil {
				continue
			}
			for _, v := range w.Points {
				if d := v.Dot(sf.Normal); d < bestd {
					bestd = d
					best = v
					texinfo = hull0.Faces[i].Texinfo
				}
			}
		}
		if math.IsInf(bestd, 1) {
			continue
		}
		origin := best
		if !suppress[si] {
			origin = best.Sub(sf.Point)
		}
		if err := c.addHullPlane(hull, sf.Normal.Mul(-1), origin, texinfo, false); err != nil {
			return brushError(ErrCapacity, b, "%v", err)
		}
	}
	return nil
}
