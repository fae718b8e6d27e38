package scheduler

import (
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// WorkingWindow bounds the hours of a day within which SuggestSlot will
// place new events.
type WorkingWindow struct {
	OpenHour  int
	CloseHour int
}

// DefaultWorkingWindow is 09:00–18:00.
var DefaultWorkingWindow = WorkingWindow{OpenHour: 9, CloseHour: 18}

// Slot is a proposed interval for a new event. OutsideWindow marks the
// best-effort fallback returned when the working window is exhausted; the
// caller decides whether to accept it.
type Slot struct {
	Start         time.Time
	End           time.Time
	OutsideWindow bool
}

// SuggestSlot returns the earliest interval of the requested duration
// inside the day's working window that does not collide with existing
// events, keeping buffer after each event it skips past. If no gap fits,
// it falls back to a slot at the window opening flagged OutsideWindow
// rather than fabricating one beyond the window. Deterministic for a
// given schedule and day.
func SuggestSlot(events []domain.Event, day time.Time, duration, buffer time.Duration, window WorkingWindow) Slot {
	y, m, d := day.Date()
	open := time.Date(y, m, d, window.OpenHour, 0, 0, 0, day.Location())
	end := time.Date(y, m, d, window.CloseHour, 0, 0, 0, day.Location())

	var dayEvents []domain.Event
	for _, e := range SortByStart(events) {
		if e.SameDay(day) {
			dayEvents = append(dayEvents, e)
		}
	}

	cursor := open
	for i := 0; i <= len(dayEvents); i++ {
		next := end
		if i < len(dayEvents) {
			next = dayEvents[i].Start
		}
		if !cursor.Add(duration).After(next) {
			return Slot{Start: cursor, End: cursor.Add(duration)}
		}
		if i < len(dayEvents) {
			cursor = dayEvents[i].End.Add(buffer)
		}
	}

	return Slot{Start: open, End: open.Add(duration), OutsideWindow: true}
}
