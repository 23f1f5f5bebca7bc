// Package debounce delays rapid-fire calls so only the latest one runs, and
// tags each call with a generation so superseded results can be discarded.
package debounce

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultWindow is the quiet period used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Debouncer runs the most recently triggered function once the window has
// passed without another trigger.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New creates a debouncer. A non-positive window uses DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn, replacing any pending call. It is a no-op after Stop.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Cancel drops the pending call, if any, and reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	pending := d.timer.Stop()
	d.timer = nil
	return pending
}

// Stop cancels the pending call and rejects future triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Generation hands out increasing tokens. A result computed under a token is
// current only while no newer token has been issued.
type Generation struct {
	n atomic.Uint64
}

// Next issues a new token, making all earlier ones stale.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current reports whether token is the latest one issued.
func (g *Generation) Current(token uint64) bool {
	return g.n.Load() == token
}
