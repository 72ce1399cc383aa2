package session

import (
	"sync"
	"time"
)

// fakeClock lets countdown tests fire timers deterministically instead
// of sleeping real wall-clock durations.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	last *fakeTimer
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{fn: f}
	c.mu.Lock()
	c.last = t
	c.mu.Unlock()
	return t
}

// fireLast invokes the most recently scheduled timer's callback, as
// long as it hasn't since been stopped.
func (c *fakeClock) fireLast() {
	c.mu.Lock()
	t := c.last
	c.mu.Unlock()
	if t != nil && !t.stopped {
		t.fn()
	}
}
