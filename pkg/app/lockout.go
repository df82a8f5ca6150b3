package app

import "time"

// lockout tracks consecutive passphrase failures and enforces an
// exponential backoff. The first lockout engages after threshold
// consecutive failures; once a streak has locked, every further failure
// re-locks with double the previous duration (1s, 2s, 4s, ...). When a
// countdown reaches zero the lockout clears and the failure counter
// resets; only a successful submission resets the doubling.
type lockout struct {
	threshold int
	base      time.Duration

	failures int       // consecutive failures since last clear
	locks    int       // lockouts incurred in the current streak
	until    time.Time // zero when not locked

	now func() time.Time
}

func newLockout(threshold int, base time.Duration) *lockout {
	if threshold <= 0 {
		threshold = 3
	}
	if base <= 0 {
		base = time.Second
	}
	return &lockout{
		threshold: threshold,
		base:      base,
		now:       time.Now,
	}
}

// Locked reports whether submissions are currently blocked.
func (l *lockout) Locked() bool {
	return !l.until.IsZero() && l.now().Before(l.until)
}

// Fail records a failed submission. Failures while locked are ignored;
// the dialog blocks submission during a countdown.
func (l *lockout) Fail() {
	if l.Locked() {
		return
	}
	l.failures++

	// A streak that has locked once re-locks on every further failure.
	if l.locks == 0 && l.failures < l.threshold {
		return
	}

	d := l.base << l.locks
	l.locks++
	l.until = l.now().Add(d)
}

// Success resets the streak entirely.
func (l *lockout) Success() {
	l.failures = 0
	l.locks = 0
	l.until = time.Time{}
}

// Tick advances the countdown. Returns true if the lockout cleared on
// this tick: the failure counter resets to zero, but the doubling
// survives until a successful submission.
func (l *lockout) Tick() bool {
	if l.until.IsZero() {
		return false
	}
	if l.now().Before(l.until) {
		return false
	}
	l.until = time.Time{}
	l.failures = 0
	return true
}

// Remaining returns the time left on the countdown, zero when not locked.
func (l *lockout) Remaining() time.Duration {
	if l.until.IsZero() {
		return 0
	}
	left := l.until.Sub(l.now())
	if left <= 0 {
		return 0
	}
	return left
}

// RemainingSeconds returns the countdown rounded up to whole seconds,
// for the ticking display.
func (l *lockout) RemainingSeconds() int {
	return int((l.Remaining() + time.Second - 1) / time.Second)
}
