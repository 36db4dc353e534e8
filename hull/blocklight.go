// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import "sync"

// BlockLight collects the brushes and sides tagged with the blocklight
// texture so the lighting stage can treat them as light blockers without
// them contributing clip geometry. Marking is safe from concurrent brush
// workers.
type BlockLight struct {
	mu      sync.Mutex
	brushes []*Brush
	sides   []*Side
}

// NewBlockLight creates and returns a new empty collector.
func NewBlockLight() *BlockLight {

	return &BlockLight{}
}

// MarkBrush records a brush whose aggregate contents is BLOCKLIGHT. Its
// sides are marked separately by the driver's per-side pass.
func (bl *BlockLight) MarkBrush(b *Brush) {

	bl.mu.Lock()
	bl.brushes = append(bl.brushes, b)
	bl.mu.Unlock()
}

// MarkSide records one blocklight side. Sides are marked individually
// because a blocklight side may ride along on a brush whose aggregate
// contents an assignment side locked to something else.
func (bl *BlockLight) MarkSide(side *Side) {

	bl.mu.Lock()
	bl.sides = append(bl.sides, side)
	bl.mu.Unlock()
}

// Brushes returns the marked brushes.
func (bl *BlockLight) Brushes() []*Brush {

	bl.mu.Lock()
	defer bl.mu.Unlock()
	return append([]*Brush(nil), bl.brushes...)
}

// Sides returns the marked sides.
func (bl *BlockLight) Sides() []*Side {

	bl.mu.Lock()
	defer bl.mu.Unlock()
	return append([]*Side(nil), bl.sides...)
}
