package overlay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOrderAndDrain(t *testing.T) {
	q := NewQueue()
	q.Announce("first", UrgencyPolite)
	q.Announce("second", UrgencyAssertive)

	msgs := q.Drain()
	assert.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Message)
	assert.Equal(t, "second", msgs[1].Message)
	assert.Equal(t, 0, q.Len())
}

func TestQueueBounded(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 60; i++ {
		q.Announce(fmt.Sprintf("msg %d", i), UrgencyPolite)
	}
	assert.Equal(t, defaultQueueCap, q.Len())

	// Oldest entries were dropped
	msgs := q.Drain()
	assert.Equal(t, "msg 10", msgs[0].Message)
}

func TestQueueIgnoresEmptyMessages(t *testing.T) {
	q := NewQueue()
	q.Announce("", UrgencyAssertive)
	assert.Equal(t, 0, q.Len())
}
