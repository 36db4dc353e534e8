// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/g3n/csg/config"
	"github.com/g3n/csg/contents"
	"github.com/g3n/csg/logger"
)

// MaxHullShapes is the hard capacity of the named hull-shape registry.
const MaxHullShapes = 128

// HullShape is a registered collision shape. A disabled shape falls back to
// the built-in box expansion; a shape with no brushes disables clipping for
// the hulls it is bound to. More than one brush is rejected at parse time.
type HullShape struct {
	ID       string
	Disabled bool
	Brushes  []*hullBrush
}

// ShapeRegistry holds the per-hull default hull shapes and the named shapes
// that brushes request through their hull-shape keys.
type ShapeRegistry struct {
	defaults [config.NumHulls]*HullShape
	named    map[string]*HullShape
	count    int
	log      *logger.Logger
}

// NewShapeRegistry creates a registry whose defaults all use the built-in
// box expansion.
func NewShapeRegistry(log *logger.Logger) *ShapeRegistry {

	r := &ShapeRegistry{
		named: make(map[string]*HullShape),
		log:   log,
	}
	for h := 0; h < config.NumHulls; h++ {
		r.defaults[h] = &HullShape{Disabled: true}
	}
	return r
}

// Default returns the default shape bound to the specified hull.
func (r *ShapeRegistry) Default(h int) *HullShape {

	return r.defaults[h]
}

// Named returns the shape registered under the specified id, or nil.
func (r *ShapeRegistry) Named(id string) *HullShape {

	return r.named[id]
}

// parseHullShape builds a hull shape from an info_hullshape entity and its
// brushes, registering it by targetname and binding it as the default for
// every hull selected by the defaulthulls bitmask. Binding a default
// deep-copies the shape so later redefinitions cannot alias it.
func (c *Compiler) parseHullShape(ent *Entity, brushes []*Brush) error {

	r := c.Shapes

	var shapeBrush *Brush
	for _, b := range brushes {
		ct, err := c.CheckBrushContents(b)
		if err != nil {
			return err
		}
		b.Contents = ct
		if ct == contents.Origin {
			continue
		}
		if shapeBrush != nil {
			return brushError(ErrGeometry, b, "info_hullshape with multiple brushes")
		}
		shapeBrush = b
	}

	shape := &HullShape{
		ID:       ent.Keys["targetname"],
		Disabled: ent.IntKey("disabled") != 0,
	}
	if shapeBrush != nil {
		hb, err := c.createHullBrush(shapeBrush)
		if err != nil {
			return err
		}
		shape.Brushes = []*hullBrush{hb}
	}

	if shape.ID != "" {
		if _, dup := r.named[shape.ID]; dup {
			r.log.Warn("duplicate hull shape %q, using the later definition", shape.ID)
		} else {
			if r.count >= MaxHullShapes {
				return &CompileError{Kind: ErrCapacity, Entity: -1, Brush: -1, Side: -1,
					Msg: "too many hull shapes"}
			}
			r.count++
		}
		r.named[shape.ID] = shape
	}

	defaulthulls := ent.IntKey("defaulthulls")
	for h := 1; h < config.NumHulls; h++ {
		if defaulthulls&(1<<uint(h)) == 0 {
			continue
		}
		copied := &HullShape{ID: shape.ID, Disabled: shape.Disabled}
		for _, hb := range shape.Brushes {
			copied.Brushes = append(copied.Brushes, hb.clone())
		}
		r.defaults[h] = copied
	}
	return nil
}
