package tui

import (
	"io"
	"sync"
)

// ttyFile is the subset of *os.File Bubble Tea checks for to treat its
// output as a terminal (size queries, resize events).
type ttyFile interface {
	io.ReadWriteCloser
	Fd() uintptr
}

// syncWriter serializes writes so a bell never lands inside a frame.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// syncFile keeps the terminal methods of the wrapped file visible.
type syncFile struct {
	*syncWriter
	f ttyFile
}

func (s syncFile) Read(p []byte) (int, error) { return s.f.Read(p) }
func (s syncFile) Close() error               { return s.f.Close() }
func (s syncFile) Fd() uintptr                { return s.f.Fd() }

// NewOutput wraps a terminal stream so that the program renderer and the
// bell sink can share it. Bubble Tea writes each frame with a single Write,
// so serializing writes is enough to keep bells between frames.
func NewOutput(w io.Writer) io.Writer {
	sw := &syncWriter{w: w}
	if f, ok := w.(ttyFile); ok {
		return syncFile{syncWriter: sw, f: f}
	}
	return sw
}
