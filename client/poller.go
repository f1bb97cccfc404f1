package client

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval matches the monitoring screen's refresh cadence.
const DefaultPollInterval = 30 * time.Second

// Poller runs fn immediately and then on every tick until Stop is called.
// Screens that poll must hold the handle and stop it on teardown; an
// orphaned poller keeps hitting the API forever.
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartPoller begins polling. A non-positive interval falls back to
// DefaultPollInterval. The context passed to fn is cancelled by Stop.
func StartPoller(interval time.Duration, fn func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)
		fn(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()
	return p
}

// Stop halts the poller and waits for the loop to exit. Safe to call more
// than once.
func (p *Poller) Stop() {
	p.once.Do(func() {
		p.cancel()
		<-p.done
	})
}
