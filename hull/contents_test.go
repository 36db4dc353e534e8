// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/contents"
)

func TestMixedFaceContentsFatal(t *testing.T) {
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "wall")
	// One liquid side among solid sides with no content* override.
	b.Sides[3].Texture.Name = "!water"
	c := newTestCompiler(config.Default(), b)

	_, err := c.CheckBrushContents(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed face contents")
	assert.Contains(t, err.Error(), "!water")
}

func TestAssignmentSideLocksContents(t *testing.T) {
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "wall")
	// An assignment side wins and ordinary sides are tolerated.
	b.Sides[0].Texture.Name = "contentwater"
	c := newTestCompiler(config.Default(), b)

	ct, err := c.CheckBrushContents(b)
	require.NoError(t, err)
	assert.Equal(t, contents.Water, ct)
}

func TestConflictingAssignmentSidesFatal(t *testing.T) {
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "wall")
	b.Sides[0].Texture.Name = "contentwater"
	b.Sides[1].Texture.Name = "contentsolid"
	c := newTestCompiler(config.Default(), b)

	_, err := c.CheckBrushContents(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed face contents")
}

func TestSkyAndNullSidesAreExempt(t *testing.T) {
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "wall")
	b.Sides[0].Texture.Name = "sky_day01"
	b.Sides[1].Texture.Name = "null"
	c := newTestCompiler(config.Default(), b)

	ct, err := c.CheckBrushContents(b)
	require.NoError(t, err)
	// SKY is numerically below SOLID, NULL rewrites to SOLID.
	assert.Equal(t, contents.Solid, ct)
}

func TestNullBrushBecomesSolid(t *testing.T) {
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "null")
	c := newTestCompiler(config.Default(), b)

	ct, err := c.CheckBrushContents(b)
	require.NoError(t, err)
	assert.Equal(t, contents.Solid, ct)
}

func TestFuncGroupRejectsOrigin(t *testing.T) {
	entities := []Entity{
		{Keys: map[string]string{"classname": "worldspawn"}},
		{Keys: map[string]string{"classname": "func_group"}},
	}
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{16, 16, 16}, "origin")
	b.Entity = 1
	c := NewCompiler(config.Default(), entities, []*Brush{b})

	_, err := c.CheckBrushContents(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed in world")
}

func TestEntityRejectsSky(t *testing.T) {
	entities := []Entity{
		{Keys: map[string]string{"classname": "worldspawn"}},
		{Keys: map[string]string{"classname": "func_door"}},
	}
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "sky_day01")
	b.Entity = 1
	c := NewCompiler(config.Default(), entities, []*Brush{b})

	_, err := c.CheckBrushContents(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed in entity")
}

func TestWorldAllowsSky(t *testing.T) {
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "sky_day01")
	c := newTestCompiler(config.Default(), b)

	ct, err := c.CheckBrushContents(b)
	require.NoError(t, err)
	assert.Equal(t, contents.Sky, ct)
}
