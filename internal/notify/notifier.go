// Package notify is the boundary to the external notification
// collaborator. Delivery is fire-and-forget: the engine never retries or
// confirms.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Notifier receives the engine's outbound signals.
type Notifier interface {
	// Reminder fires shortly before an event starts; startAt is the
	// event's start time.
	Reminder(eventID, title string, startAt time.Time)
	// ConflictDetected reports a standing overlap between two events.
	ConflictDetected(titleA, titleB string)
	// DelayNotice tells a client their matter is running late.
	DelayNotice(client, title string, minutes int)
}

// WriterNotifier renders each signal as one line on a writer. It is the
// default collaborator for the CLI, where "notification transport" is the
// operator's terminal.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Reminder(eventID, title string, startAt time.Time) {
	n.printf("reminder: %s starts at %s (event %s)", title, startAt.Format("15:04"), eventID)
}

func (n *WriterNotifier) ConflictDetected(titleA, titleB string) {
	n.printf("conflict: %s overlaps with %s", titleA, titleB)
}

func (n *WriterNotifier) DelayNotice(client, title string, minutes int) {
	n.printf("delay: %s notified that %s is running %dm late", client, title, minutes)
}

func (n *WriterNotifier) printf(format string, args ...any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, format+"\n", args...)
}

// NopNotifier discards every signal.
type NopNotifier struct{}

func (NopNotifier) Reminder(string, string, time.Time) {}
func (NopNotifier) ConflictDetected(string, string)    {}
func (NopNotifier) DelayNotice(string, string, int)    {}
