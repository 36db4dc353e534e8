// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math"
	"slices"
	"sort"

	"github.com/g3n/csg/geom"
)

// minFaceArea is the smallest winding area a realised face may have; faces
// below it are pruned as degenerate.
const minFaceArea = 0.1

// sortSides reorders a hull's faces so that more-axial planes come first:
// chopping against axial planes first keeps the intermediate windings tight.
// The sort is stable and keyed on the count of effectively-zero normal
// components.
func sortSides(hull *Hull) {

	zeros := func(f *Face) int {
		n := 0
		for i := 0; i < 3; i++ {
			if math.Abs(f.Plane.Normal[i]) < geom.NormalEpsilon {
				n++
			}
		}
		return n
	}
	sort.SliceStable(hull.Faces, func(i, j int) bool {
		return zeros(&hull.Faces[i]) > zeros(&hull.Faces[j])
	})
}

// makeHullFaces realises the windings of one hull of a brush: every face's
// plane is clipped to the inner half-space of every other face, degenerate
// faces are pruned, and the hull bounds are folded from the surviving
// windings. Pruning a face invalidates the windings chopped against it, so
// the realisation restarts until a full pass survives.
func (c *Compiler) makeHullFaces(b *Brush, h int) error {

	hull := &b.Hulls[h]
	sortSides(hull)

	for changed := true; changed; {
		changed = false
		hull.Bounds.Reset()

		for i := 0; i < len(hull.Faces); i++ {
			f := &hull.Faces[i]
			w := geom.NewWindingFromPlane(f.Plane.Normal, f.Plane.Dist)

			alive := true
			for j := range hull.Faces {
				if j == i {
					continue
				}
				p := c.Planes.Plane(hull.Faces[j].PlaneID)
				if !w.Chop(p.Normal, p.Dist, geom.NormalEpsilon) {
					alive = false
					break
				}
			}
			if alive {
				w.RemoveColinearPoints(geom.OnEpsilon)
				if w.Area() < minFaceArea {
					alive = false
				}
			}
			if !alive {
				hull.Faces = slices.Delete(hull.Faces, i, i+1)
				changed = true
				break
			}
			f.Winding = w
			w.AddToBounds(&hull.Bounds)
		}
	}

	if len(hull.Faces) == 0 {
		return nil
	}
	ext := c.Settings.WorldExtent
	for i := 0; i < 3; i++ {
		if hull.Bounds.Min[i] < -ext || hull.Bounds.Max[i] > ext {
			return brushError(ErrGeometry, b,
				"brush outside world (+/-%.0f): (%.0f %.0f %.0f)-(%.0f %.0f %.0f)", ext,
				hull.Bounds.Min[0], hull.Bounds.Min[1], hull.Bounds.Min[2],
				hull.Bounds.Max[0], hull.Bounds.Max[1], hull.Bounds.Max[2])
		}
	}
	return nil
}
