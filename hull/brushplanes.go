// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"slices"

	"github.com/g3n/csg/contents"
)

// makeBrushPlanes converts the brush's three-point side descriptions into
// canonical plane ids, building the hull 0 face list. Side points are taken
// relative to the owning entity's origin key so origin-brush entities work.
func (c *Compiler) makeBrushPlanes(b *Brush) error {

	origin := c.Entities[b.Entity].Vec3Key("origin")
	hull := &b.Hulls[0]

	for si := range b.Sides {
		side := &b.Sides[si]

		p0 := side.Planepts[0].Sub(origin)
		p1 := side.Planepts[1].Sub(origin)
		p2 := side.Planepts[2].Sub(origin)

		id, err := c.Planes.PlaneFromPoints(p0, p1, p2)
		if err != nil {
			return brushError(ErrCapacity, b, "%v", err)
		}
		if id == -1 {
			return sideError(ErrGeometry, b, si, "plane with no normal")
		}
		for fi := range hull.Faces {
			if hull.Faces[fi].PlaneID&^1 == id&^1 {
				return sideError(ErrGeometry, b, si, "coplanar faces")
			}
		}

		texinfo := 0
		if !c.Settings.EntsOnly {
			texinfo = c.TexInfo(side)
		}
		hull.Faces = slices.Insert(hull.Faces, 0, Face{
			PlaneID:  id,
			Plane:    c.Planes.Plane(id),
			Texinfo:  texinfo,
			Contents: contents.Empty,
			Bevel:    b.Bevel || side.Bevel,
		})
	}
	return nil
}
