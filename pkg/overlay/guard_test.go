package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuardSuppressesDoubleFire(t *testing.T) {
	now := time.Unix(0, 0)
	g := NewGuard(200 * time.Millisecond)
	g.now = func() time.Time { return now }

	assert.True(t, g.Allow())
	assert.False(t, g.Allow(), "second attempt in the same window is suppressed")

	now = now.Add(150 * time.Millisecond)
	assert.False(t, g.Allow(), "still inside the window")

	now = now.Add(60 * time.Millisecond)
	assert.True(t, g.Allow(), "window elapsed, guard re-arms")
	assert.False(t, g.Allow())
}

func TestGuardDefaultWindow(t *testing.T) {
	g := NewGuard(0)
	assert.Equal(t, DefaultGuardWindow, g.window)
}
