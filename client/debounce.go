package client

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet window for search inputs.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer collapses a burst of values into a single callback with the
// final value once the input has been quiet for the window. The very first
// value is suppressed when it is empty, so mounting a blank search box does
// not trigger a redundant fetch.
type Debouncer struct {
	window time.Duration
	fn     func(string)

	mu    sync.Mutex
	timer *time.Timer
	value string
	dirty bool
}

// NewDebouncer builds a debouncer calling fn after the quiet window.
// A non-positive window falls back to DefaultDebounce.
func NewDebouncer(window time.Duration, fn func(string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window, fn: fn}
}

// Set records the latest value and restarts the quiet window.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.dirty && value == "" {
		return
	}
	d.dirty = true
	d.value = value

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	value := d.value
	d.timer = nil
	d.mu.Unlock()
	d.fn(value)
}

// Flush fires immediately with the pending value, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil
	if pending {
		d.timer.Stop()
		d.timer = nil
	}
	value := d.value
	d.mu.Unlock()
	if pending {
		d.fn(value)
	}
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
