// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/csg/config"
	"github.com/g3n/csg/geom"
)

func TestAxialBevelSuppression(t *testing.T) {
	settings := config.Default()
	settings.ClipType = config.ClipSimple
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "wall")
	// The +x side carries a bevel hint: that side must not expand.
	b.Sides[0].Bevel = true
	c := newTestCompiler(settings, b)

	require.NoError(t, c.Run(context.Background()))

	hull1 := &b.Hulls[1]
	require.Len(t, hull1.Faces, 6)

	px := findFaceByNormal(hull1, mgl64.Vec3{1, 0, 0})
	require.NotNil(t, px)
	assert.InDelta(t, 64, px.Plane.Dist, 1e-6)

	nx := findFaceByNormal(hull1, mgl64.Vec3{-1, 0, 0})
	require.NotNil(t, nx)
	assert.InDelta(t, 16, nx.Plane.Dist, 1e-6)

	py := findFaceByNormal(hull1, mgl64.Vec3{0, 1, 0})
	require.NotNil(t, py)
	assert.InDelta(t, 80, py.Plane.Dist, 1e-6)
}

func TestTetrahedronBevels(t *testing.T) {
	settings := config.Default()
	settings.ClipType = config.ClipPrecise
	b := tetraBrush("wall")
	c := newTestCompiler(settings, b)

	require.NoError(t, c.Run(context.Background()))

	// The expanded tetrahedron carries the offset oblique plane, one bevel
	// per oblique edge sign change, and the six bounding planes.
	hull1 := &b.Hulls[1]
	require.Len(t, hull1.Faces, 10)
	assert.Equal(t, 6, axialFaces(hull1))

	oblique := findFaceByNormal(hull1, mgl64.Vec3{1, 1, 1}.Normalize())
	require.NotNil(t, oblique)

	for _, bevel := range []mgl64.Vec3{
		mgl64.Vec3{0, 1, 1}.Normalize(),
		mgl64.Vec3{1, 0, 1}.Normalize(),
		mgl64.Vec3{1, 1, 0}.Normalize(),
	} {
		assert.NotNil(t, findFaceByNormal(hull1, bevel), "missing bevel %v", bevel)
	}
}

func TestLegacyHasNoBevels(t *testing.T) {
	settings := config.Default()
	settings.ClipType = config.ClipLegacy
	b := tetraBrush("wall")
	c := newTestCompiler(settings, b)

	require.NoError(t, c.Run(context.Background()))
	// Phase 2 is skipped: the oblique plane plus the six bounding planes.
	assert.Len(t, b.Hulls[1].Faces, 7)
}

func TestSmallestKeepsFacesUnshifted(t *testing.T) {
	settings := config.Default()
	settings.ClipType = config.ClipSmallest
	b := tetraBrush("wall")
	c := newTestCompiler(settings, b)

	require.NoError(t, c.Run(context.Background()))

	hull1 := &b.Hulls[1]
	oblique := findFaceByNormal(hull1, mgl64.Vec3{1, 1, 1}.Normalize())
	require.NotNil(t, oblique)
	// The oblique plane passes through the original face.
	assert.InDelta(t, 64/mgl64.Vec3{1, 1, 1}.Len(), oblique.Plane.Dist, 1e-6)
}

func TestNormalizedOffsetProjects(t *testing.T) {
	settings := config.Default()
	settings.ClipType = config.ClipNormalized
	b := tetraBrush("wall")
	c := newTestCompiler(settings, b)

	require.NoError(t, c.Run(context.Background()))

	n := mgl64.Vec3{1, 1, 1}.Normalize()
	oblique := findFaceByNormal(&b.Hulls[1], n)
	require.NotNil(t, oblique)
	// Each component shifts by its own projection onto the box.
	want := 64/mgl64.Vec3{1, 1, 1}.Len() + n[0]*n[0]*16 + n[1]*n[1]*16 + n[2]*n[2]*36
	assert.InDelta(t, want, oblique.Plane.Dist, 1e-6)
}

func TestForcedBevelBrush(t *testing.T) {
	settings := config.Default()
	settings.ClipType = config.ClipSimple
	b := boxBrush(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{64, 64, 64}, "wall")
	// A brush-wide bevel flag suppresses expansion on every side.
	b.Bevel = true
	c := newTestCompiler(settings, b)

	require.NoError(t, c.Run(context.Background()))
	hull1 := &b.Hulls[1]
	require.Len(t, hull1.Faces, 6)
	assert.True(t, geom.VecEqual(hull1.Bounds.Min, mgl64.Vec3{0, 0, 0}, 1e-6))
	assert.True(t, geom.VecEqual(hull1.Bounds.Max, mgl64.Vec3{64, 64, 64}, 1e-6))
}
