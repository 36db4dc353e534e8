// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/geom"
)

// sideFromPlane builds a side whose three points span the plane n·x = dist
// with the outward normal n.
func sideFromPlane(n mgl64.Vec3, dist float64, tex string) Side {

	w := geom.NewWindingFromPlane(n, dist)
	return Side{
		Planepts: [3]mgl64.Vec3{w.Points[0], w.Points[1], w.Points[2]},
		Texture:  TextureDef{Name: tex},
	}
}

// boxBrush builds an axis-aligned brush spanning [mins, maxs].
func boxBrush(mins, maxs mgl64.Vec3, tex string) *Brush {

	b := &Brush{}
	for axis := 0; axis < 3; axis++ {
		var pos, neg mgl64.Vec3
		pos[axis] = 1
		neg[axis] = -1
		b.Sides = append(b.Sides,
			sideFromPlane(pos, maxs[axis], tex),
			sideFromPlane(neg, -mins[axis], tex))
	}
	return b
}

// wedgeBrush builds a brush bounded by four axial planes and the 45 degree
// ramp plane with normal (0, -1/sqrt2, 1/sqrt2) through the origin.
func wedgeBrush(tex string) *Brush {

	b := &Brush{}
	b.Sides = append(b.Sides,
		sideFromPlane(mgl64.Vec3{-1, 0, 0}, 0, tex),
		sideFromPlane(mgl64.Vec3{1, 0, 0}, 64, tex),
		sideFromPlane(mgl64.Vec3{0, 0, -1}, 0, tex),
		sideFromPlane(mgl64.Vec3{0, 1, 0}, 64, tex),
		sideFromPlane(mgl64.Vec3{0, -1, 1}.Normalize(), 0, tex))
	return b
}

// tetraBrush builds the tetrahedron with vertices at the origin and 64 units
// along each axis.
func tetraBrush(tex string) *Brush {

	b := &Brush{}
	oblique := mgl64.Vec3{1, 1, 1}.Normalize()
	b.Sides = append(b.Sides,
		sideFromPlane(mgl64.Vec3{-1, 0, 0}, 0, tex),
		sideFromPlane(mgl64.Vec3{0, -1, 0}, 0, tex),
		sideFromPlane(mgl64.Vec3{0, 0, -1}, 0, tex),
		sideFromPlane(oblique, oblique.Dot(mgl64.Vec3{64, 0, 0}), tex))
	return b
}

// worldEntities returns an entity list with just worldspawn.
func worldEntities() []Entity {

	return []Entity{{Keys: map[string]string{"classname": "worldspawn"}}}
}

// newTestCompiler builds a single-worker compiler over worldspawn brushes.
func newTestCompiler(settings *config.Settings, brushes ...*Brush) *Compiler {

	for _, b := range brushes {
		b.Entity = 0
	}
	settings.Workers = 1
	return NewCompiler(settings, worldEntities(), brushes)
}

// axialFaces counts the faces of a hull with axial plane types.
func axialFaces(h *Hull) int {

	n := 0
	for i := range h.Faces {
		if h.Faces[i].Plane.Type.Axial() {
			n++
		}
	}
	return n
}

// findFaceByNormal returns the first face whose plane normal matches n.
func findFaceByNormal(h *Hull, n mgl64.Vec3) *Face {

	for i := range h.Faces {
		if geom.VecEqual(h.Faces[i].Plane.Normal, n, 1e-6) {
			return &h.Faces[i]
		}
	}
	return nil
}
