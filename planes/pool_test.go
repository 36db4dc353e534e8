// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planes

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/csg/geom"
)

// checkPairing asserts the pool pairing invariant: an even pool size, every
// pair holding opposite orientations, and the even-indexed plane oriented
// positive along its dominant axis.
func checkPairing(t *testing.T, p *Pool) {
	t.Helper()
	n := p.Len()
	require.Equal(t, 0, n%2)
	for i := 0; i < n; i += 2 {
		a := p.Plane(i)
		b := p.Plane(i + 1)
		assert.True(t, geom.VecEqual(a.Normal, b.Normal.Mul(-1), 1e-9))
		assert.InDelta(t, -a.Dist, b.Dist, 1e-9)
		assert.GreaterOrEqual(t, a.Normal[a.Type.Axis()], 0.0)
	}
}

func TestFindIntPlanePairing(t *testing.T) {
	p := NewPool()

	id, err := p.FindIntPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 64})
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 2, p.Len())

	// The opposite orientation of the same plane is its sibling.
	id2, err := p.FindIntPlane(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{5, 5, 64})
	require.NoError(t, err)
	assert.Equal(t, 1, id2)
	assert.Equal(t, 2, p.Len())

	// A negative-dominant query inserts the pair flipped and returns the
	// odd id.
	id3, err := p.FindIntPlane(mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{16, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, id3)
	pl := p.Plane(id3)
	assert.True(t, geom.VecEqual(pl.Normal, mgl64.Vec3{-1, 0, 0}, 1e-9))
	assert.InDelta(t, -16, pl.Dist, 1e-9)

	checkPairing(t, p)
}

func TestFindIntPlaneDedup(t *testing.T) {
	p := NewPool()

	a, err := p.FindIntPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 64})
	require.NoError(t, err)
	b, err := p.FindIntPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 64})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Inputs within DirEpsilon/DistEpsilon collapse onto the same plane.
	c, err := p.FindIntPlane(mgl64.Vec3{0.00000001, 0, 1}, mgl64.Vec3{30, -12, 64.01})
	require.NoError(t, err)
	assert.Equal(t, a, c)
	assert.Equal(t, 2, p.Len())

	// A clearly different distance is a new pair.
	d, err := p.FindIntPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 65})
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
	assert.Equal(t, 4, p.Len())
}

func TestPlaneFromPoints(t *testing.T) {
	p := NewPool()

	id, err := p.PlaneFromPoints(
		mgl64.Vec3{64, 64, 64}, mgl64.Vec3{64, 0, 64}, mgl64.Vec3{0, 0, 64})
	require.NoError(t, err)
	require.NotEqual(t, -1, id)
	pl := p.Plane(id)
	assert.True(t, geom.VecEqual(pl.Normal, mgl64.Vec3{0, 0, 1}, 1e-9))
	assert.InDelta(t, 64, pl.Dist, 1e-9)

	// Colinear points have no plane.
	id, err = p.PlaneFromPoints(
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{32, 0, 0}, mgl64.Vec3{64, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, -1, id)
}

func TestFindIntPlaneConcurrent(t *testing.T) {
	p := NewPool()

	// 8 workers each inserting 1000 planes drawn from 10 distinct planes
	// must produce exactly 10 pairs.
	normals := make([]mgl64.Vec3, 10)
	origins := make([]mgl64.Vec3, 10)
	for i := range normals {
		normals[i] = mgl64.Vec3{0, 0, 1}
		origins[i] = mgl64.Vec3{0, 0, float64(i * 16)}
	}

	var wg sync.WaitGroup
	ids := make([][]int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				id, err := p.FindIntPlane(normals[(g+n)%10], origins[(g+n)%10])
				if err != nil {
					t.Error(err)
					return
				}
				ids[g] = append(ids[g], id)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 20, p.Len())
	for _, worker := range ids {
		for _, id := range worker {
			assert.GreaterOrEqual(t, id, 0)
			assert.Less(t, id, 20)
		}
	}
	checkPairing(t, p)
}

func TestPoolCapacity(t *testing.T) {
	p := NewPool()
	p.count.Store(MaxMapPlanes)
	_, err := p.FindIntPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1})
	assert.ErrorIs(t, err, ErrPoolFull)
}
