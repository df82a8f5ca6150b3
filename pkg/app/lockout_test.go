package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestLockout(threshold int, base time.Duration) (*lockout, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	l := newLockout(threshold, base)
	l.now = clock.Now
	return l, clock
}

func TestLockoutEngagesAtThreshold(t *testing.T) {
	l, _ := newTestLockout(3, time.Second)

	l.Fail()
	l.Fail()
	assert.False(t, l.Locked(), "two failures should not lock")

	l.Fail()
	require.True(t, l.Locked(), "third failure should lock")
	assert.Equal(t, 1, l.RemainingSeconds())
}

func TestLockoutDoublesPerFailureBeyondThreshold(t *testing.T) {
	l, clock := newTestLockout(3, time.Second)

	l.Fail()
	l.Fail()
	l.Fail()
	assert.Equal(t, time.Second, l.Remaining())

	// Countdown expires, lockout clears, failure counter resets.
	clock.Advance(time.Second)
	assert.True(t, l.Tick())
	assert.False(t, l.Locked())
	assert.Equal(t, 0, l.failures)

	// The streak has locked once, so a single further failure re-locks
	// with double the duration.
	l.Fail()
	require.True(t, l.Locked())
	assert.Equal(t, 2*time.Second, l.Remaining())

	clock.Advance(2 * time.Second)
	assert.True(t, l.Tick())

	l.Fail()
	require.True(t, l.Locked())
	assert.Equal(t, 4*time.Second, l.Remaining())
}

func TestLockoutCountdownTicksDown(t *testing.T) {
	l, clock := newTestLockout(3, 3*time.Second)

	l.Fail()
	l.Fail()
	l.Fail()
	assert.Equal(t, 3, l.RemainingSeconds())

	clock.Advance(time.Second)
	assert.False(t, l.Tick(), "mid-countdown tick should not clear")
	assert.Equal(t, 2, l.RemainingSeconds())

	clock.Advance(time.Second)
	assert.False(t, l.Tick())
	assert.Equal(t, 1, l.RemainingSeconds())

	clock.Advance(time.Second)
	assert.True(t, l.Tick(), "countdown reaching zero should clear")
	assert.Equal(t, 0, l.RemainingSeconds())
	assert.False(t, l.Locked())
}

func TestLockoutIgnoresFailuresWhileLocked(t *testing.T) {
	l, clock := newTestLockout(3, time.Second)

	l.Fail()
	l.Fail()
	l.Fail()
	require.True(t, l.Locked())

	// Submissions are blocked during the countdown; a stray Fail must
	// not extend it.
	l.Fail()
	assert.Equal(t, time.Second, l.Remaining())

	clock.Advance(time.Second)
	assert.True(t, l.Tick())
}

func TestLockoutSuccessResetsDoubling(t *testing.T) {
	l, clock := newTestLockout(3, time.Second)

	l.Fail()
	l.Fail()
	l.Fail()
	clock.Advance(time.Second)
	l.Tick()

	l.Success()

	// A fresh streak needs the full threshold again and starts back at
	// the base duration.
	l.Fail()
	assert.False(t, l.Locked())
	l.Fail()
	l.Fail()
	require.True(t, l.Locked())
	assert.Equal(t, time.Second, l.Remaining())
}
