package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCursor_StartStop(t *testing.T) {
	c := NewCursor(time.Millisecond, nil)
	assert.False(t, c.Running())

	var ticks atomic.Int64
	c.Start(func(elapsed time.Duration) {
		ticks.Add(1)
	})
	assert.True(t, c.Running())

	// wait for at least one tick
	deadline := time.Now().Add(time.Second)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.Greater(t, ticks.Load(), int64(0))

	c.Stop()
	assert.False(t, c.Running())

	// no further ticks may fire once Stop has returned
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestCursor_StopIsIdempotent(t *testing.T) {
	c := NewCursor(time.Millisecond, nil)
	c.Start(func(time.Duration) {})

	c.Stop()
	c.Stop()
	c.Stop()
	assert.False(t, c.Running())
}

func TestCursor_StopWithoutStart(t *testing.T) {
	c := NewCursor(time.Millisecond, nil)
	c.Stop()
	assert.False(t, c.Running())
}

func TestCursor_StartWhileRunningIsNoop(t *testing.T) {
	c := NewCursor(time.Millisecond, nil)
	defer c.Stop()

	var first, second atomic.Int64
	c.Start(func(time.Duration) { first.Add(1) })
	c.Start(func(time.Duration) { second.Add(1) })

	deadline := time.Now().Add(time.Second)
	for first.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.Greater(t, first.Load(), int64(0))
	assert.Equal(t, int64(0), second.Load())
}

func TestCursor_ElapsedUsesInjectedClock(t *testing.T) {
	base := time.Unix(0, 0)
	var now atomic.Int64
	clock := func() time.Time {
		return base.Add(time.Duration(now.Load()))
	}

	c := NewCursor(time.Millisecond, clock)
	var got atomic.Int64
	now.Store(int64(0))
	c.Start(func(elapsed time.Duration) {
		got.Store(int64(elapsed))
	})

	now.Store(int64(1500 * time.Millisecond))
	deadline := time.Now().Add(time.Second)
	for got.Load() != int64(1500*time.Millisecond) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	c.Stop()

	assert.Equal(t, int64(1500*time.Millisecond), got.Load())
}

func TestCursor_RestartAfterStop(t *testing.T) {
	c := NewCursor(time.Millisecond, nil)

	c.Start(func(time.Duration) {})
	c.Stop()

	var ticks atomic.Int64
	c.Start(func(time.Duration) { ticks.Add(1) })
	deadline := time.Now().Add(time.Second)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	c.Stop()

	assert.Greater(t, ticks.Load(), int64(0))
}
