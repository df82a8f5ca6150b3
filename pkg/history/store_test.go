package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id string, started time.Time) Record {
	return Record{
		ID:        id,
		Peer:      "harbor-jade-osprey",
		FileName:  "photo.jpg",
		Size:      1024,
		Direction: "send",
		Status:    "complete",
		StartedAt: started,
		EndedAt:   started.Add(time.Second),
	}
}

func TestAddAndRecent(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Add(record("a", base)))
	require.NoError(t, s.Add(record("b", base.Add(time.Hour))))
	require.NoError(t, s.Add(record("c", base.Add(2*time.Hour))))

	got, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID, "newest first")
	assert.Equal(t, "b", got[1].ID)
}

func TestAddIsIdempotentPerID(t *testing.T) {
	s := openTestStore(t)
	base := time.Now().UTC()

	r := record("a", base)
	require.NoError(t, s.Add(r))
	r.Status = "failed"
	require.NoError(t, s.Add(r))

	got, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "failed", got[0].Status)
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Add(record("old", base)))
	require.NoError(t, s.Add(record("new", base.Add(48*time.Hour))))

	n, err := s.Prune(base.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}
