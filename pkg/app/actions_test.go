package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartzlabs/lazysend/pkg/transfer"
)

func TestSendFileCompletesEmptyFile(t *testing.T) {
	var events []transfer.Event
	m := transfer.NewManager(func(ev transfer.Event) { events = append(events, ev) })
	id := m.Start("room amber-cedar-opal", "empty.txt", 0, transfer.DirectionSend)

	sendFile(m, id, strings.NewReader(""))

	tr, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, transfer.StatusComplete, tr.Status)
	assert.Equal(t, 0, m.ActiveCount())

	require.NotEmpty(t, events)
	assert.Equal(t, transfer.EventCompleted, events[len(events)-1].Kind)
}

func TestSendFileStreamsToCompletion(t *testing.T) {
	m := transfer.NewManager(nil)
	id := m.Start("room amber-cedar-opal", "notes.txt", 11, transfer.DirectionSend)

	sendFile(m, id, strings.NewReader("hello world"))

	tr, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, transfer.StatusComplete, tr.Status)
	assert.Equal(t, int64(11), tr.Sent)
}

func TestSendFileFailsOnReadError(t *testing.T) {
	m := transfer.NewManager(nil)
	id := m.Start("room amber-cedar-opal", "broken.txt", 100, transfer.DirectionSend)

	sendFile(m, id, failReader{})

	tr, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, transfer.StatusFailed, tr.Status)
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("read error") }
