// Package clock abstracts wall-clock reads. Anything whose behavior depends
// on the current time (birthdate validation, token expiry, timestamps on
// events) takes a Clock so tests can pin or advance time deterministically.
// Ambient time.Now() reads belong only in the composition root via System.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Frozen always returns the same instant.
type Frozen struct {
	Instant time.Time
}

// FrozenAt pins the clock to t.
func FrozenAt(t time.Time) *Frozen {
	return &Frozen{Instant: t}
}

func (f *Frozen) Now() time.Time { return f.Instant }

// Stepping starts at an instant and can be advanced from tests. Safe for
// concurrent readers.
type Stepping struct {
	mu  sync.Mutex
	now time.Time
}

// SteppingAt starts a Stepping clock at t.
func SteppingAt(t time.Time) *Stepping {
	return &Stepping{now: t}
}

func (s *Stepping) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the clock forward by d.
func (s *Stepping) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}
