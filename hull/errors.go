// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import "fmt"

// ErrorKind classifies fatal compile errors.
type ErrorKind int

const (
	// ErrGeometry covers degenerate planes, coplanar faces, out-of-world
	// brushes and invalid hull-shape brushes.
	ErrGeometry ErrorKind = iota
	// ErrContents covers mixed face contents and contents disallowed by the
	// owning entity.
	ErrContents
	// ErrCapacity covers plane pool and hull-shape registry overflow.
	ErrCapacity
)

// CompileError is a fatal error carrying the diagnostic indices of the
// offending brush. Side is -1 when the error is not tied to one side.
type CompileError struct {
	Kind   ErrorKind
	Entity int
	Brush  int
	Side   int
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *CompileError) Error() string {

	if e.Side >= 0 {
		return fmt.Sprintf("Entity %d, Brush %d, Side %d: %s", e.Entity, e.Brush, e.Side, e.Msg)
	}
	return fmt.Sprintf("Entity %d, Brush %d: %s", e.Entity, e.Brush, e.Msg)
}

// Unwrap returns the wrapped cause, if any.
func (e *CompileError) Unwrap() error {

	return e.Err
}

// brushError builds a CompileError for the given brush.
func brushError(kind ErrorKind, b *Brush, format string, v ...interface{}) *CompileError {

	return &CompileError{
		Kind:   kind,
		Entity: b.OriginalEntity,
		Brush:  b.OriginalBrush,
		Side:   -1,
		Msg:    fmt.Sprintf(format, v...),
	}
}

// sideError builds a CompileError for the given brush side.
func sideError(kind ErrorKind, b *Brush, side int, format string, v ...interface{}) *CompileError {

	e := brushError(kind, b, format, v...)
	e.Side = side
	return e
}
