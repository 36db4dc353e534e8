// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/g3n/csg/contents"
)

// CheckBrushContents decides the aggregate contents of a brush from its side
// textures and enforces the per-entity content policy. An assignment side
// (texture starting with "content" or "skip") locks the aggregate; otherwise
// the numerically greatest side contents wins. Sides that disagree with the
// aggregate are a fatal mixed-contents error unless exempt.
func (c *Compiler) CheckBrushContents(b *Brush) (contents.Contents, error) {

	if len(b.Sides) == 0 {
		return 0, brushError(ErrGeometry, b, "brush with no sides")
	}

	assign := -1
	for i := range b.Sides {
		if contents.IsAssignment(b.Sides[i].Texture.Name) {
			assign = i
			break
		}
	}

	var best contents.Contents
	if assign >= 0 {
		best = contents.ForTexture(b.Sides[assign].Texture.Name)
	} else {
		best = contents.ForTexture(b.Sides[0].Texture.Name)
		for i := 1; i < len(b.Sides); i++ {
			if ct := contents.ForTexture(b.Sides[i].Texture.Name); ct > best {
				best = ct
			}
		}
	}

	for i := range b.Sides {
		name := b.Sides[i].Texture.Name
		if assign >= 0 && i == assign {
			continue
		}
		ct := contents.ForTexture(name)
		if assign >= 0 {
			if !contents.IsAssignment(name) {
				// Non-assignment sides ride along with an explicit
				// assignment, except markers that never mix.
				if ct != contents.Origin && ct != contents.Hint && ct != contents.BoundingBox {
					continue
				}
			}
			if ct != best {
				return 0, sideError(ErrContents, b, i,
					"mixed face contents: texture %s differs from brush contents %v", name, best)
			}
			continue
		}
		if ct == contents.Sky || ct == contents.Null {
			continue
		}
		if ct != best {
			return 0, sideError(ErrContents, b, i,
				"mixed face contents: texture %s differs from brush contents %v", name, best)
		}
	}

	if best == contents.Null {
		best = contents.Solid
	}

	ent := &c.Entities[b.Entity]
	if b.Entity == 0 || ent.ClassName() == "func_group" {
		if best == contents.Origin {
			return 0, brushError(ErrContents, b, "origin brushes not allowed in world")
		}
		if best == contents.BoundingBox {
			return 0, brushError(ErrContents, b, "boundingbox brushes not allowed in world")
		}
		return best, nil
	}

	switch best {
	case contents.Solid, contents.Water, contents.Slime, contents.Lava,
		contents.Origin, contents.BoundingBox, contents.Hint,
		contents.BlockLight, contents.ToEmpty:
		return best, nil
	}
	return 0, brushError(ErrContents, b, "contents %v not allowed in entity", best)
}
