package engine

import (
	"sync"
	"time"
)

// Clock supplies the wall time for a cursor. Injectable so tests can step
// time deterministically.
type Clock func() time.Time

// Cursor drives a preview by invoking a callback with the elapsed virtual
// time on every tick. It is either idle or running; Stop is synchronous and
// idempotent, and once it returns no further ticks fire.
type Cursor struct {
	interval time.Duration
	clock    Clock

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewCursor(interval time.Duration, clock Clock) *Cursor {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	if clock == nil {
		clock = time.Now
	}
	return &Cursor{interval: interval, clock: clock}
}

// Start transitions the cursor to running. Starting a running cursor is a
// no-op.
func (c *Cursor) Start(tick func(elapsed time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(tick, c.clock(), c.stop, c.done)
}

// Stop transitions the cursor back to idle, waiting for any in-flight tick
// to finish so the caller can safely dispose the drawing surface.
func (c *Cursor) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether the cursor is scheduling ticks.
func (c *Cursor) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

func (c *Cursor) run(tick func(time.Duration), start time.Time, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// re-check so a tick racing Stop never fires after teardown
			select {
			case <-stop:
				return
			default:
			}
			tick(c.clock().Sub(start))
		}
	}
}
