package synced

import "sync"

// Guard serializes access to a value of type C.
type Guard[C any] struct {
	mu sync.Mutex
	c  C
}

// NewGuard wraps c. After wrapping, c should be accessed through the guard only.
func NewGuard[C any](c C) *Guard[C] {
	return &Guard[C]{c: c}
}

// Do calls fn with the guarded value while holding the lock. The lock is
// released even if fn panics.
func (g *Guard[C]) Do(fn func(C) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.c)
}

// With calls fn with the guarded value while holding the lock and returns
// fn's result.
func With[C, R any](g *Guard[C], fn func(C) R) R {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.c)
}
