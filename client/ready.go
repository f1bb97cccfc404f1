package client

import (
	"context"
	"sync"
)

// ReadyService wraps a one-time initialization (loading reference data,
// warming caches). EnsureReady is idempotent: concurrent callers share a
// single load, later callers return immediately, and a failed load stays
// failed until Reset so every screen sees the same outcome.
type ReadyService struct {
	Load func(ctx context.Context) error

	mu      sync.Mutex
	started bool
	done    chan struct{}
	err     error
}

func NewReadyService(load func(ctx context.Context) error) *ReadyService {
	return &ReadyService{Load: load}
}

// EnsureReady runs the load once and reports its outcome. The first caller
// triggers the load; everyone else waits for it or for their own context.
func (r *ReadyService) EnsureReady(ctx context.Context) error {
	r.mu.Lock()
	if !r.started {
		r.started = true
		r.done = make(chan struct{})
		go r.run()
	}
	done := r.done
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.err
	}
}

func (r *ReadyService) run() {
	err := r.Load(context.Background())
	r.mu.Lock()
	r.err = err
	close(r.done)
	r.mu.Unlock()
}

// Ready reports whether the load has completed successfully.
func (r *ReadyService) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return false
	}
	select {
	case <-r.done:
		return r.err == nil
	default:
		return false
	}
}

// Reset forgets a finished load so the next EnsureReady retries. A load
// still in flight is left alone.
func (r *ReadyService) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return
	}
	select {
	case <-r.done:
		r.started = false
		r.done = nil
		r.err = nil
	default:
	}
}
