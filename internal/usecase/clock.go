package usecase

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing millisecond timestamps, so ids derived
// from them never collide within a process.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	ms := t.UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
		t = time.UnixMilli(ms).In(t.Location())
	}
	c.last = ms
	return t
}
