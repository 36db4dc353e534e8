// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"fmt"
	"io"
	"os"
)

// Console writes compile events to the process console: progress goes to
// stdout, warnings and errors to stderr so build pipelines can separate the
// two streams.
type Console struct {
	out io.Writer
	err io.Writer
}

// NewConsole creates a console writer over the process stdout/stderr.
func NewConsole() *Console {

	return &Console{out: os.Stdout, err: os.Stderr}
}

// Write writes the event to the stream its severity belongs on.
func (c *Console) Write(e Event) {

	w := c.out
	if e.Level >= Warning {
		w = c.err
	}
	fmt.Fprintln(w, e.String())
}

func (c *Console) Sync() {

}

// Stream writes compile events as framed lines to an arbitrary io.Writer,
// such as the log file behind csgc's -log flag. The caller owns the
// underlying writer and closes it when the run ends.
type Stream struct {
	w io.Writer
}

// NewStream creates a writer emitting framed log lines to w.
func NewStream(w io.Writer) *Stream {

	return &Stream{w: w}
}

// Write writes the framed event.
func (s *Stream) Write(e Event) {

	fmt.Fprintln(s.w, e.String())
}

// Sync flushes the underlying writer when it supports it.
func (s *Stream) Sync() {

	if f, ok := s.w.(*os.File); ok {
		f.Sync()
	}
}
