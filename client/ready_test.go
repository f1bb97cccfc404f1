package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestEnsureReadyLoadsOnce(t *testing.T) {
	var loads atomic.Int32
	r := NewReadyService(func(ctx context.Context) error {
		loads.Add(1)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.EnsureReady(context.Background()); err != nil {
				t.Errorf("EnsureReady returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if loads.Load() != 1 {
		t.Fatalf("load should run once, ran %d times", loads.Load())
	}
	if !r.Ready() {
		t.Fatalf("service should be ready after a successful load")
	}
}

func TestEnsureReadyFailureIsStickyUntilReset(t *testing.T) {
	var loads atomic.Int32
	boom := errors.New("db down")
	r := NewReadyService(func(ctx context.Context) error {
		if loads.Add(1) == 1 {
			return boom
		}
		return nil
	})

	if err := r.EnsureReady(context.Background()); err != boom {
		t.Fatalf("expected load error, got %v", err)
	}
	// a second call must see the same failure without retrying
	if err := r.EnsureReady(context.Background()); err != boom {
		t.Fatalf("failure should be sticky, got %v", err)
	}
	if loads.Load() != 1 {
		t.Fatalf("failed load retried without Reset, ran %d times", loads.Load())
	}

	r.Reset()
	if err := r.EnsureReady(context.Background()); err != nil {
		t.Fatalf("retry after Reset failed: %v", err)
	}
	if !r.Ready() {
		t.Fatalf("service should be ready after the retry")
	}
}

func TestEnsureReadyHonorsCallerContext(t *testing.T) {
	block := make(chan struct{})
	r := NewReadyService(func(ctx context.Context) error {
		<-block
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.EnsureReady(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	close(block)
}
