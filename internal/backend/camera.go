package backend

import (
	"errors"
	"sync"
)

// CameraStream is a live video resource handle. Whoever acquires the
// stream owns the underlying device; the try-on store holds the handle
// only to guarantee Stop is called exactly once on every exit path of
// a try-on session.
type CameraStream interface {
	// Capture takes a still image and returns its encoded bytes.
	Capture() ([]byte, error)
	// Stop releases the underlying device. Safe to call more than
	// once; calls after the first are no-ops.
	Stop() error
}

// CameraDevice acquires camera streams.
type CameraDevice interface {
	Acquire() (CameraStream, error)
}

// ErrStreamStopped is returned by Capture after the stream was stopped.
var ErrStreamStopped = errors.New("camera stream stopped")

// StubCamera is an in-process camera device for development and tests.
// Each Acquire returns an independent stream whose Capture yields the
// configured frame.
type StubCamera struct {
	Frame []byte
}

// Acquire returns a new stub stream.
func (c *StubCamera) Acquire() (CameraStream, error) {
	return &stubStream{frame: c.Frame}, nil
}

type stubStream struct {
	mu      sync.Mutex
	frame   []byte
	stopped bool
}

func (s *stubStream) Capture() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, ErrStreamStopped
	}
	return s.frame, nil
}

func (s *stubStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}
