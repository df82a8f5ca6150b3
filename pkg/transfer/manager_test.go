package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLifecycle(t *testing.T) {
	var events []Event
	m := NewManager(func(ev Event) { events = append(events, ev) })

	id := m.Start("harbor-jade-osprey", "photo.jpg", 1000, DirectionSend)
	require.NotEmpty(t, id)

	tr, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, StatusActive, tr.Status)
	assert.Equal(t, 0.0, tr.Progress())

	require.NoError(t, m.Advance(id, 500))
	tr, _ = m.Get(id)
	assert.InDelta(t, 0.5, tr.Progress(), 0.001)

	require.NoError(t, m.Advance(id, 1000))
	tr, _ = m.Get(id)
	assert.Equal(t, StatusComplete, tr.Status)

	require.Len(t, events, 3)
	assert.Equal(t, EventStarted, events[0].Kind)
	assert.Equal(t, EventProgress, events[1].Kind)
	assert.Equal(t, EventCompleted, events[2].Kind)
}

func TestManagerRejectsUpdatesAfterFinish(t *testing.T) {
	m := NewManager(nil)
	id := m.Start("peer", "a.bin", 10, DirectionReceive)

	require.NoError(t, m.Cancel(id))
	assert.Error(t, m.Advance(id, 5))
	assert.Error(t, m.Cancel(id))
	assert.Error(t, m.Fail(id, "late"))

	tr, _ := m.Get(id)
	assert.Equal(t, StatusCancelled, tr.Status)
}

func TestManagerUnknownID(t *testing.T) {
	m := NewManager(nil)
	assert.Error(t, m.Advance("nope", 1))
	_, ok := m.Get("nope")
	assert.False(t, ok)
}

func TestManagerFail(t *testing.T) {
	m := NewManager(nil)
	id := m.Start("peer", "a.bin", 10, DirectionSend)
	require.NoError(t, m.Fail(id, "peer disconnected"))

	tr, _ := m.Get(id)
	assert.Equal(t, StatusFailed, tr.Status)
	assert.Equal(t, "peer disconnected", tr.Err)
	assert.Equal(t, 0, m.ActiveCount())
}

func TestAdvanceClampsSent(t *testing.T) {
	m := NewManager(nil)
	id := m.Start("peer", "a.bin", 10, DirectionSend)
	require.NoError(t, m.Advance(id, 50))

	tr, _ := m.Get(id)
	assert.Equal(t, int64(10), tr.Sent)
	assert.Equal(t, 1.0, tr.Progress())
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel string, data string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	}

	mustWrite("a.txt", "hello")
	mustWrite("sub/b.txt", "world")
	mustWrite("node_modules/dep/c.js", "skip me")
	mustWrite(".hidden", "skip me too")
	mustWrite("deep/one/two/d.txt", "too deep")

	entries, err := Scan(root, ScanOptions{MaxDepth: 2})
	require.NoError(t, err)

	var rels []string
	for _, e := range entries {
		rels = append(rels, filepath.ToSlash(e.RelPath))
	}
	assert.ElementsMatch(t, []string{"a.txt", "sub/b.txt"}, rels)
}

func TestScanExcludesAndDepth(t *testing.T) {
	root := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	mustWrite("keep.txt")
	mustWrite("skipdir/file.txt")
	mustWrite("a/b/c/deep.txt")

	entries, err := Scan(root, ScanOptions{
		MaxDepth:    2,
		ExcludeDirs: []string{"skipdir"},
	})
	require.NoError(t, err)

	var rels []string
	for _, e := range entries {
		rels = append(rels, filepath.ToSlash(e.RelPath))
	}
	assert.Contains(t, rels, "keep.txt")
	assert.NotContains(t, rels, "skipdir/file.txt")
	assert.NotContains(t, rels, "a/b/c/deep.txt")
}

func TestIsSendable(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, IsSendable(file))
	assert.False(t, IsSendable(root), "directories are not sendable")
	assert.False(t, IsSendable(filepath.Join(root, "missing")))
}
