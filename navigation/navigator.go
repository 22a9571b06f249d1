// Package navigation abstracts moving the user to another application path:
// a page redirect in the browser, a system browser launch on a terminal.
package navigation

import (
	"context"
	"sync"
)

const (
	RootPath  = "/"
	LoginPath = "/login"
)

// Navigator moves the user to path.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// Recorder remembers visited paths without side effects.
type Recorder struct {
	mu      sync.Mutex
	history []string
}

func (r *Recorder) Navigate(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, path)
	return nil
}

// History returns visited paths in order
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

func NewRecorder() *Recorder {
	return &Recorder{}
}
