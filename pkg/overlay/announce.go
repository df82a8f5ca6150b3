package overlay

// Urgency controls how promptly assistive technology should read an
// announcement.
type Urgency int

const (
	// UrgencyPolite queues the message behind whatever is being read.
	UrgencyPolite Urgency = iota
	// UrgencyAssertive interrupts the current reading.
	UrgencyAssertive
)

func (u Urgency) String() string {
	if u == UrgencyAssertive {
		return "assertive"
	}
	return "polite"
}

// Announcer notifies assistive technology of state changes. Implementations
// are opaque external services; the coordinator expects no errors back.
type Announcer interface {
	Announce(message string, urgency Urgency)
}

// Announcement is one queued screen-reader message.
type Announcement struct {
	Message string
	Urgency Urgency
}

const defaultQueueCap = 50

// Queue is a bounded FIFO Announcer. When full, the oldest entry is
// dropped to make room.
type Queue struct {
	items []Announcement
	cap   int
}

// NewQueue creates a queue holding at most 50 pending announcements.
func NewQueue() *Queue {
	return &Queue{cap: defaultQueueCap}
}

// Announce enqueues a message.
func (q *Queue) Announce(message string, urgency Urgency) {
	if message == "" {
		return
	}
	if len(q.items) >= q.cap {
		q.items = q.items[1:]
	}
	q.items = append(q.items, Announcement{Message: message, Urgency: urgency})
}

// Drain returns and clears all pending announcements in arrival order.
func (q *Queue) Drain() []Announcement {
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending announcements.
func (q *Queue) Len() int {
	return len(q.items)
}
