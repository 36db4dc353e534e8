// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/contents"
	"github.com/g3n/csg/logger"
	"github.com/g3n/csg/planes"
)

// TexInfoFunc resolves a side's texture descriptor to a texinfo index. The
// texture writer is an external collaborator; the default resolver returns 0.
type TexInfoFunc func(*Side) int

// Compiler orchestrates clip-hull construction for a brush stream. Brushes
// are processed independently and may be compiled concurrently; the plane
// pool and the blocklight collector are the shared mutable state, and both
// are safe for concurrent use.
type Compiler struct {
	Settings *config.Settings
	Planes   *planes.Pool
	Shapes   *ShapeRegistry
	Entities []Entity
	Brushes  []*Brush

	TexInfo    TexInfoFunc
	BlockLight *BlockLight

	log      *logger.Logger
	consumed map[*Brush]bool
}

// NewCompiler creates a compiler for the given settings, entities and brush
// stream.
func NewCompiler(settings *config.Settings, entities []Entity, brushes []*Brush) *Compiler {

	return &Compiler{
		Settings:   settings,
		Planes:     planes.NewPool(),
		Shapes:     NewShapeRegistry(logger.Default),
		Entities:   entities,
		Brushes:    brushes,
		TexInfo:    func(*Side) int { return 0 },
		BlockLight: NewBlockLight(),
		log:        logger.Default,
		consumed:   make(map[*Brush]bool),
	}
}

// SetLogger redirects the compiler's log output.
func (c *Compiler) SetLogger(log *logger.Logger) {

	c.log = log
	c.Shapes.log = log
}

// Run compiles every brush. info_hullshape entities are consumed first so
// that custom shapes are bound before any brush expands against them; the
// remaining brushes are then compiled by a pool of workers. The first fatal
// error aborts the build.
func (c *Compiler) Run(ctx context.Context) error {

	for ei := range c.Entities {
		if c.Entities[ei].ClassName() != "info_hullshape" {
			continue
		}
		var ebrushes []*Brush
		for _, b := range c.Brushes {
			if b.Entity == ei {
				ebrushes = append(ebrushes, b)
				c.consumed[b] = true
			}
		}
		if err := c.parseHullShape(&c.Entities[ei], ebrushes); err != nil {
			c.log.Error("%v", err)
			return err
		}
	}

	workers := c.Settings.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan *Brush)
	var wg sync.WaitGroup
	var failed atomic.Bool
	var errOnce sync.Once
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				if failed.Load() {
					continue
				}
				if err := c.CompileBrush(b); err != nil {
					errOnce.Do(func() {
						firstErr = err
						c.log.Error("%v", err)
					})
					failed.Store(true)
				}
			}
		}()
	}

feed:
	for _, b := range c.Brushes {
		if c.consumed[b] || failed.Load() {
			continue
		}
		select {
		case jobs <- b:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	c.log.Developer("plane pool: %d planes", c.Planes.Len())
	return ctx.Err()
}

// CompileBrush runs the per-brush pipeline: classify contents, build hull 0,
// then expand and realise hulls 1..NumHulls-1 as the brush's clip flags
// demand.
func (c *Compiler) CompileBrush(b *Brush) error {

	ct, err := c.CheckBrushContents(b)
	if err != nil {
		return err
	}
	b.Contents = ct

	// Blocklight sides are collected per side: an assignment side may lock
	// the brush to other contents while individual sides still block light.
	for si := range b.Sides {
		if contents.ForTexture(b.Sides[si].Texture.Name) == contents.BlockLight {
			c.BlockLight.MarkSide(&b.Sides[si])
		}
	}

	if ct == contents.Origin || ct == contents.BoundingBox {
		return nil
	}

	if err := c.makeBrushPlanes(b); err != nil {
		return err
	}
	if err := c.makeHullFaces(b, 0); err != nil {
		return err
	}

	switch ct {
	case contents.BlockLight:
		c.BlockLight.MarkBrush(b)
		return nil
	case contents.Hint, contents.ToEmpty:
		return nil
	}

	if c.Settings.NoClip {
		if b.ClipHull != 0 {
			b.Hulls[0].Faces = nil
		}
		return nil
	}

	if b.ClipHull != 0 {
		for h := 1; h < config.NumHulls; h++ {
			if b.ClipHull&(1<<uint(h)) == 0 {
				continue
			}
			if err := c.expand(b, h); err != nil {
				return err
			}
			if err := c.makeHullFaces(b, h); err != nil {
				return err
			}
		}
		b.Contents = contents.Solid
		b.Hulls[0].Faces = nil
		return nil
	}

	if b.NoClip {
		return nil
	}
	for h := 1; h < config.NumHulls; h++ {
		if err := c.expand(b, h); err != nil {
			return err
		}
		if err := c.makeHullFaces(b, h); err != nil {
			return err
		}
	}
	return nil
}

// expand generates the face planes of hull h. A bound, enabled custom shape
// takes the Minkowski path against that shape; a bound shape with no brushes
// disables clipping for this hull; otherwise the default box expansion runs.
func (c *Compiler) expand(b *Brush, h int) error {

	shape := c.Shapes.Default(h)
	if name := b.HullShapes[h]; name != "" {
		named := c.Shapes.Named(name)
		if named == nil {
			return brushError(ErrGeometry, b, "hull shape %q not found", name)
		}
		shape = named
	}

	if !shape.Disabled {
		if len(shape.Brushes) == 0 {
			b.Hulls[h].Faces = nil
			return nil
		}
		return c.expandBrushShape(b, h, shape.Brushes[0])
	}
	return c.expandBrushBox(b, h)
}
