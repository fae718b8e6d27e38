package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/nyayak/docket/internal/domain"
)

// EventOption mutates a fixture event before it is returned.
type EventOption func(*domain.Event)

func WithKind(k domain.EventKind) EventOption {
	return func(e *domain.Event) {
		e.Kind = k
	}
}

func WithID(id string) EventOption {
	return func(e *domain.Event) {
		e.ID = id
	}
}

func WithLocation(loc string) EventOption {
	return func(e *domain.Event) {
		e.Location = loc
	}
}

func WithClient(client string) EventOption {
	return func(e *domain.Event) {
		e.Client = client
	}
}

func WithDistance(km float64) EventOption {
	return func(e *domain.Event) {
		e.DistanceKm = km
	}
}

func WithDocuments(docs ...string) EventOption {
	return func(e *domain.Event) {
		e.Documents = docs
	}
}

func WithRiskFlags(flags domain.RiskFlags) EventOption {
	return func(e *domain.Event) {
		e.RiskFlags = flags
	}
}

// NewTestEvent builds a valid event of the given duration starting at
// start. Defaults to a meeting with a seeded checklist.
func NewTestEvent(title string, start time.Time, duration time.Duration, opts ...EventOption) *domain.Event {
	now := start.Add(-24 * time.Hour)
	e := &domain.Event{
		ID:        uuid.New().String(),
		Title:     title,
		Kind:      domain.KindMeeting,
		Start:     start.UTC(),
		End:       start.Add(duration).UTC(),
		Checklist: domain.DefaultChecklist(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// At is shorthand for a UTC instant on the canonical fixture day.
func At(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
