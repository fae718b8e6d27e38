package scheduler

import (
	"testing"
	"time"

	"github.com/nyayak/docket/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bufMin = 20 * time.Minute

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

// Inserting a meeting that collides with an existing hearing pushes the
// meeting past the hearing's end plus buffer.
func TestReflow_InsertIntoOccupiedSlot(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("hearing", at(10, 0), 60),  // 10:00–11:00
		mkEvent("meeting", at(10, 30), 45), // requested 10:30, 45m
	}

	out, err := Reflow(schedule, bufMin)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, at(10, 0), out[0].Start)
	assert.Equal(t, at(11, 0), out[0].End)
	assert.Equal(t, at(11, 20), out[1].Start, "meeting should land at hearing end + buffer")
	assert.Equal(t, at(12, 5), out[1].End, "45m duration preserved")
}

// A delayed hearing cascades into the downstream meeting.
func TestDelay_CascadesDownstream(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("hearing", at(10, 0), 60),  // 10:00–11:00
		mkEvent("meeting", at(11, 20), 45), // 11:20–12:05
	}

	out, err := Delay(schedule, "hearing", 15, bufMin)
	require.NoError(t, err)

	assert.Equal(t, at(11, 15), out[0].End, "hearing end pushed by 15m")
	assert.Equal(t, at(11, 35), out[1].Start, "meeting shifted to delayed end + buffer")
	assert.Equal(t, at(12, 20), out[1].End)
	assert.Equal(t, 45*time.Minute, out[1].Duration(), "duration unchanged")
}

func TestDelay_UnknownEvent(t *testing.T) {
	_, err := Delay([]domain.Event{mkEvent("a", at(10, 0), 30)}, "nope", 15, bufMin)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDelay_NonPositiveMinutes(t *testing.T) {
	_, err := Delay([]domain.Event{mkEvent("a", at(10, 0), 30)}, "a", 0, bufMin)
	assert.ErrorIs(t, err, ErrNonPositiveDelay)
}

func TestReflow_ConsistentScheduleIsNoOp(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(9, 0), 60),
		mkEvent("b", at(10, 30), 30),
		mkEvent("c", at(12, 0), 45),
	}
	out, err := Reflow(schedule, bufMin)
	require.NoError(t, err)
	for i := range schedule {
		assert.Equal(t, schedule[i].Start, out[i].Start)
		assert.Equal(t, schedule[i].End, out[i].End)
	}
}

// Reflow never pulls an event earlier, so a gap left by a deletion stays.
func TestReflow_NeverCompactsGaps(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(9, 0), 30),
		// two-hour hole where a cancelled hearing used to be
		mkEvent("c", at(12, 0), 30),
	}
	out, err := Reflow(schedule, bufMin)
	require.NoError(t, err)
	assert.Equal(t, at(12, 0), out[1].Start, "gap must not be compacted")
}

func TestReflow_NegativeBufferRejected(t *testing.T) {
	_, err := Reflow([]domain.Event{mkEvent("a", at(9, 0), 30)}, -time.Minute)
	assert.ErrorIs(t, err, ErrNegativeBuffer)
}

func TestReflow_InputNotMutated(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(10, 0), 60),
		mkEvent("b", at(10, 15), 30),
	}
	origStart := schedule[1].Start

	_, err := Reflow(schedule, bufMin)
	require.NoError(t, err)
	assert.Equal(t, origStart, schedule[1].Start, "reflow must return a new schedule")
}

func TestReflow_ZeroBufferPacksBackToBack(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(10, 0), 60),
		mkEvent("b", at(10, 30), 30),
	}
	out, err := Reflow(schedule, 0)
	require.NoError(t, err)
	assert.Equal(t, at(11, 0), out[1].Start)
}
