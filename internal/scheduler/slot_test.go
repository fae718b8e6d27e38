package scheduler

import (
	"testing"
	"time"

	"github.com/nyayak/docket/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var window = DefaultWorkingWindow

func day() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestSuggestSlot_EmptyDay(t *testing.T) {
	slot := SuggestSlot(nil, day(), 45*time.Minute, bufMin, window)
	assert.Equal(t, at(9, 0), slot.Start)
	assert.Equal(t, at(9, 45), slot.End)
	assert.False(t, slot.OutsideWindow)
}

func TestSuggestSlot_BeforeFirstEvent(t *testing.T) {
	schedule := []domain.Event{mkEvent("a", at(10, 0), 60)}
	slot := SuggestSlot(schedule, day(), 30*time.Minute, bufMin, window)
	assert.Equal(t, at(9, 0), slot.Start)
	assert.False(t, slot.OutsideWindow)
}

func TestSuggestSlot_SkipsPastBusyMorning(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(9, 0), 60),   // 09:00–10:00
		mkEvent("b", at(10, 10), 80), // 10:10–11:30
	}
	// 45m does not fit between a.End+buffer (10:20) and b.Start (10:10 — already past),
	// so the cursor walks to b.End+buffer = 11:50.
	slot := SuggestSlot(schedule, day(), 45*time.Minute, bufMin, window)
	assert.Equal(t, at(11, 50), slot.Start)
	assert.Equal(t, at(12, 35), slot.End)
	assert.False(t, slot.OutsideWindow)
}

// A fully booked working window falls back to the window opening, flagged,
// never an error.
func TestSuggestSlot_FullyBookedFallsBack(t *testing.T) {
	schedule := []domain.Event{mkEvent("all-day", at(9, 0), 9*60)} // 09:00–18:00
	slot := SuggestSlot(schedule, day(), 30*time.Minute, bufMin, window)
	assert.Equal(t, at(9, 0), slot.Start)
	assert.Equal(t, at(9, 30), slot.End)
	assert.True(t, slot.OutsideWindow, "fallback slot must be flagged outside the ideal window")
}

func TestSuggestSlot_RespectsBufferAfterEvents(t *testing.T) {
	schedule := []domain.Event{mkEvent("a", at(9, 0), 120)} // 09:00–11:00
	slot := SuggestSlot(schedule, day(), 60*time.Minute, bufMin, window)
	assert.Equal(t, at(11, 20), slot.Start, "cursor must clear event end + buffer")
}

// Inserting an event at the suggested slot never conflicts with the
// pre-existing events of that day.
func TestSuggestSlot_InsertionProducesNoOverlap(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(9, 30), 60),
		mkEvent("b", at(12, 0), 90),
		mkEvent("c", at(15, 0), 30),
	}
	for _, durMin := range []int{15, 30, 45, 60, 90} {
		slot := SuggestSlot(schedule, day(), time.Duration(durMin)*time.Minute, bufMin, window)
		if slot.OutsideWindow {
			continue
		}
		augmented := append(SortByStart(schedule), domain.Event{
			ID: "new", Title: "new", Kind: domain.KindMeeting,
			Start: slot.Start, End: slot.End,
		})
		require.Empty(t, DetectOverlaps(SortByStart(augmented)),
			"slot %v–%v for %dm collides", slot.Start, slot.End, durMin)
	}
}

func TestSuggestSlot_IgnoresOtherDays(t *testing.T) {
	other := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	schedule := []domain.Event{
		{ID: "tomorrow", Title: "x", Kind: domain.KindCourt, Start: other, End: other.Add(9 * time.Hour)},
	}
	slot := SuggestSlot(schedule, day(), 30*time.Minute, bufMin, window)
	assert.Equal(t, at(9, 0), slot.Start)
	assert.False(t, slot.OutsideWindow)
}

func TestSuggestSlot_Deterministic(t *testing.T) {
	schedule := []domain.Event{
		mkEvent("a", at(9, 0), 60),
		mkEvent("b", at(11, 0), 60),
	}
	first := SuggestSlot(schedule, day(), 30*time.Minute, bufMin, window)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SuggestSlot(schedule, day(), 30*time.Minute, bufMin, window))
	}
}
