package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrozenNeverMoves(t *testing.T) {
	instant := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := FrozenAt(instant)
	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now())
}

func TestSteppingAdvances(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := SteppingAt(start)
	assert.Equal(t, start, c.Now())

	c.Advance(48 * time.Hour)
	assert.Equal(t, start.Add(48*time.Hour), c.Now())
}

func TestSystemTracksWallClock(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
