package transfer

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Direction of a transfer relative to this device.
type Direction int

const (
	DirectionSend Direction = iota
	DirectionReceive
)

func (d Direction) String() string {
	if d == DirectionReceive {
		return "receive"
	}
	return "send"
}

// Status of a transfer.
type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusComplete
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Transfer is one file moving to or from a peer.
type Transfer struct {
	ID        string
	Peer      string
	FileName  string
	Size      int64
	Sent      int64
	Direction Direction
	Status    Status
	Err       string
	StartedAt time.Time
	UpdatedAt time.Time
}

// Progress returns completion in the range 0..1.
func (t Transfer) Progress() float64 {
	if t.Size <= 0 {
		return 0
	}
	p := float64(t.Sent) / float64(t.Size)
	if p > 1 {
		p = 1
	}
	return p
}

// EventKind describes what changed about a transfer.
type EventKind int

const (
	EventStarted EventKind = iota
	EventProgress
	EventCompleted
	EventFailed
	EventCancelled
)

// Event is emitted to the listener on every state change.
type Event struct {
	Kind     EventKind
	Transfer Transfer
}

// Manager tracks the transfers of the current session. Transfer progress
// arrives from worker goroutines, so the manager locks internally; the
// listener callback is invoked outside the lock.
type Manager struct {
	mu        sync.Mutex
	transfers map[string]*Transfer
	listener  func(Event)
	now       func() time.Time
}

// NewManager creates an empty manager. listener may be nil.
func NewManager(listener func(Event)) *Manager {
	return &Manager{
		transfers: make(map[string]*Transfer),
		listener:  listener,
		now:       time.Now,
	}
}

// Start registers a new transfer and returns its id.
func (m *Manager) Start(peer, fileName string, size int64, dir Direction) string {
	id := uuid.NewString()
	t := &Transfer{
		ID:        id,
		Peer:      peer,
		FileName:  fileName,
		Size:      size,
		Direction: dir,
		Status:    StatusActive,
		StartedAt: m.now(),
		UpdatedAt: m.now(),
	}

	m.mu.Lock()
	m.transfers[id] = t
	snap := *t
	m.mu.Unlock()

	m.emit(Event{Kind: EventStarted, Transfer: snap})
	return id
}

// Advance records sent bytes for a transfer, completing it when the full
// size has been moved.
func (m *Manager) Advance(id string, sent int64) error {
	m.mu.Lock()
	t, ok := m.transfers[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown transfer %q", id)
	}
	if t.Status != StatusActive {
		m.mu.Unlock()
		return fmt.Errorf("transfer %q is %s", id, t.Status)
	}

	t.Sent = sent
	if t.Sent > t.Size {
		t.Sent = t.Size
	}
	t.UpdatedAt = m.now()

	kind := EventProgress
	if t.Sent >= t.Size {
		t.Status = StatusComplete
		kind = EventCompleted
	}
	snap := *t
	m.mu.Unlock()

	m.emit(Event{Kind: kind, Transfer: snap})
	return nil
}

// Fail marks a transfer failed with a reason.
func (m *Manager) Fail(id, reason string) error {
	return m.finish(id, StatusFailed, reason, EventFailed)
}

// Cancel marks a transfer cancelled. Cancelling a finished transfer is an
// error: the caller should have checked first.
func (m *Manager) Cancel(id string) error {
	return m.finish(id, StatusCancelled, "", EventCancelled)
}

func (m *Manager) finish(id string, status Status, reason string, kind EventKind) error {
	m.mu.Lock()
	t, ok := m.transfers[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown transfer %q", id)
	}
	if t.Status != StatusActive && t.Status != StatusPending {
		m.mu.Unlock()
		return fmt.Errorf("transfer %q is already %s", id, t.Status)
	}

	t.Status = status
	t.Err = reason
	t.UpdatedAt = m.now()
	snap := *t
	m.mu.Unlock()

	m.emit(Event{Kind: kind, Transfer: snap})
	return nil
}

// Get returns a snapshot of one transfer.
func (m *Manager) Get(id string) (Transfer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transfers[id]
	if !ok {
		return Transfer{}, false
	}
	return *t, true
}

// List returns snapshots of all transfers, newest first.
func (m *Manager) List() []Transfer {
	m.mu.Lock()
	out := make([]Transfer, 0, len(m.transfers))
	for _, t := range m.transfers {
		out = append(out, *t)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// ActiveCount returns the number of transfers still moving bytes.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.transfers {
		if t.Status == StatusActive {
			n++
		}
	}
	return n
}

func (m *Manager) emit(ev Event) {
	if m.listener != nil {
		m.listener(ev)
	}
}
