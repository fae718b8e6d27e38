package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriterNotifier_Lines(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	start := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	n.Reminder("ev-1", "Bail hearing", start)
	n.ConflictDetected("Bail hearing", "Client meeting")
	n.DelayNotice("R. Mehta", "Bail hearing", 15)

	out := buf.String()
	assert.Contains(t, out, "reminder: Bail hearing starts at 10:30 (event ev-1)")
	assert.Contains(t, out, "conflict: Bail hearing overlaps with Client meeting")
	assert.Contains(t, out, "delay: R. Mehta notified that Bail hearing is running 15m late")
}

// The rendered start time tracks the event, not a fixed lead.
func TestWriterNotifier_ReminderUsesEventStart(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Reminder("ev-2", "Mediation", time.Date(2026, 3, 10, 16, 45, 0, 0, time.UTC))
	assert.Contains(t, buf.String(), "starts at 16:45")
	assert.NotContains(t, buf.String(), "in 10 minutes")
}
