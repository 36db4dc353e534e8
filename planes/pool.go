// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planes implements the shared, de-duplicated plane table of the
// compiler. Planes are stored in orientation pairs at stable indexes so a
// plane id's low bit flips its orientation, and insertion is safe under
// concurrent per-brush processing.
package planes

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/g3n/csg/geom"
)

// MaxMapPlanes is the hard capacity of the pool.
const MaxMapPlanes = 256 * 1024

// ErrPoolFull is returned when inserting a plane pair would exceed
// MaxMapPlanes.
var ErrPoolFull = errors.New("planes: internal map planes limit exceeded")

// Pool is the compiler-wide plane table. The backing array is allocated at
// full capacity up front so that a plane's address never changes once it is
// published; readers scan without locking and only an insertion takes the
// lock. The published length is advanced only after both planes of a pair
// are fully written, so a lock-free reader never observes a partially
// written plane.
type Pool struct {
	planes []geom.Plane
	count  atomic.Int64
	mu     sync.Mutex
}

// NewPool creates and returns a new empty Pool.
func NewPool() *Pool {

	return &Pool{planes: make([]geom.Plane, MaxMapPlanes)}
}

// Len returns the number of planes currently in the pool.
func (p *Pool) Len() int {

	return int(p.count.Load())
}

// Plane returns the plane with the specified id. The returned pointer is
// valid for the lifetime of the pool and the plane is never mutated.
func (p *Pool) Plane(id int) *geom.Plane {

	return &p.planes[id]
}

// matches reports whether the stored plane q matches the canonicalised query
// plane: every normal component within DirEpsilon and the query origin on q
// within DistEpsilon.
func matches(q *geom.Plane, normal, origin mgl64.Vec3) bool {

	if math.Abs(q.Normal[0]-normal[0]) > geom.DirEpsilon ||
		math.Abs(q.Normal[1]-normal[1]) > geom.DirEpsilon ||
		math.Abs(q.Normal[2]-normal[2]) > geom.DirEpsilon {
		return false
	}
	return math.Abs(q.Normal.Dot(origin)-q.Dist) < geom.DistEpsilon
}

// scan searches ids [from, to) for a plane matching the query.
func (p *Pool) scan(normal, origin mgl64.Vec3, from, to int) (int, bool) {

	for i := from; i < to; i++ {
		if matches(&p.planes[i], normal, origin) {
			return i, true
		}
	}
	return 0, false
}

// FindIntPlane returns the id of the pool plane matching the given normal
// and plane point, inserting the canonicalised plane and its inverse when no
// stored plane matches. The returned id has the query's orientation; id^1 is
// the opposite orientation.
func (p *Pool) FindIntPlane(normal, origin mgl64.Vec3) (int, error) {

	plane, ok := geom.NewPlane(normal, origin)
	if !ok {
		return -1, fmt.Errorf("planes: degenerate normal %v", normal)
	}

	// Optimistic lock-free scan over the published planes.
	seen := p.Len()
	if id, ok := p.scan(plane.Normal, origin, 0, seen); ok {
		return id, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another worker may have inserted the same plane since the optimistic
	// scan began; re-scan from the last examined index before appending.
	if id, ok := p.scan(plane.Normal, origin, seen, p.Len()); ok {
		return id, nil
	}
	return p.append(plane)
}

// append inserts the plane pair and returns the id matching the query
// orientation. Caller holds the pool lock.
func (p *Pool) append(plane geom.Plane) (int, error) {

	base := p.Len()
	if base+2 > MaxMapPlanes {
		return -1, ErrPoolFull
	}

	// The even-indexed plane of the pair is oriented positive along its
	// dominant axis.
	id := base
	first, second := plane, plane.Flipped()
	if plane.Normal[plane.Type.Axis()] < 0 {
		first, second = second, first
		id = base + 1
	}
	p.planes[base] = first
	p.planes[base+1] = second
	p.count.Store(int64(base + 2))
	return id, nil
}

// PlaneFromPoints builds the plane supported by the three points, with the
// normal of (p0-p1)x(p2-p1), and returns its pool id. Returns -1 when the
// points are colinear or coincident.
func (p *Pool) PlaneFromPoints(p0, p1, p2 mgl64.Vec3) (int, error) {

	normal := p0.Sub(p1).Cross(p2.Sub(p1))
	if normal.Len() < geom.NormalEpsilon {
		return -1, nil
	}
	return p.FindIntPlane(normal, p0)
}
