package util

import (
	"sync"
	"time"
)

type Clock interface {
	NowUtc() time.Time
}

type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (c *RealClock) NowUtc() time.Time {
	return time.Now().UTC()
}

// StubClock reports a fixed instant until it is moved. Post ids and dates
// derive from the clock, so tests pin it for determinism.
type StubClock struct {
	now  time.Time
	lock sync.Mutex
}

func NewStubClock() *StubClock {
	clock := &StubClock{}
	clock.SetNow(time.Now())
	return clock
}

func (c *StubClock) NowUtc() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *StubClock) SetNow(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = now.UTC()
}

func (c *StubClock) Advance(d time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
}
