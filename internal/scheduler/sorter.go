package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// SortByStart returns a copy of events sorted ascending by start time.
// Ties break on ID so the order is deterministic. The input is not mutated.
func SortByStart(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	for i := range events {
		out[i] = events[i].Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Upcoming returns the first event strictly after now, or nil.
// Events must already be sorted by start.
func Upcoming(sorted []domain.Event, now time.Time) *domain.Event {
	for i := range sorted {
		if sorted[i].Start.After(now) {
			return &sorted[i]
		}
	}
	return nil
}

// Current returns the event in progress at now, or nil.
func Current(sorted []domain.Event, now time.Time) *domain.Event {
	for i := range sorted {
		if sorted[i].InProgress(now) {
			return &sorted[i]
		}
	}
	return nil
}

// Countdown formats the time until the next event as "HHh MMm",
// clamped at zero once the start has passed.
func Countdown(e *domain.Event, now time.Time) string {
	if e == nil {
		return ""
	}
	mins := e.MinutesUntil(now)
	if mins < 0 {
		mins = 0
	}
	return fmt.Sprintf("%02dh %02dm", mins/60, mins%60)
}
