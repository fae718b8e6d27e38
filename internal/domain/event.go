package domain

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors surfaced at the creation boundary.
var (
	ErrEmptyTitle       = errors.New("event title is required")
	ErrInvalidKind      = errors.New("unknown event kind")
	ErrNonMonotonicTime = errors.New("event end must be after start")
	ErrNegativeDistance = errors.New("distance must be non-negative")
)

// RiskFlags are static indicators set on creation or edit. They feed the
// display layer and are distinct from the dynamically computed priority tier.
type RiskFlags struct {
	MissingDocuments       bool
	TightDeadline          bool
	AggressiveCounterparty bool
}

// Any reports whether at least one risk flag is set.
func (f RiskFlags) Any() bool {
	return f.MissingDocuments || f.TightDeadline || f.AggressiveCounterparty
}

// Event is a single schedulable docket item: a hearing, a client meeting,
// a filing deadline, or a personal block.
type Event struct {
	ID    string
	Title string
	Kind  EventKind

	Start time.Time
	End   time.Time

	Location        string
	CaseReference   string
	Client          string
	OpposingCounsel string
	Courtroom       string

	Documents []string
	Notes     string

	// DistanceKm feeds travel-time estimation. Zero means no travel leg.
	DistanceKm float64

	// Checklist maps preparation step names to completion. Display only.
	Checklist map[string]bool

	RiskFlags RiskFlags

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the event's length. Reflow and reorder preserve it.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// MinutesUntil returns whole minutes from now until the event start.
// Negative once the start has passed.
func (e *Event) MinutesUntil(now time.Time) int {
	return int(e.Start.Sub(now).Round(time.Minute) / time.Minute)
}

// InProgress reports whether now falls inside [Start, End).
func (e *Event) InProgress(now time.Time) bool {
	return !e.Start.After(now) && e.End.After(now)
}

// SameDay reports whether the event's start or end falls on the calendar
// day of t. Comparison is by date equality, not time-of-day.
func (e *Event) SameDay(t time.Time) bool {
	return sameDate(e.Start, t) || sameDate(e.End, t)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Validate rejects malformed events before they enter the schedule.
// Invalid time ranges are never silently coerced.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if !ValidEventKinds[string(e.Kind)] {
		return fmt.Errorf("%w: %q", ErrInvalidKind, e.Kind)
	}
	if !e.End.After(e.Start) {
		return ErrNonMonotonicTime
	}
	if e.DistanceKm < 0 {
		return ErrNegativeDistance
	}
	return nil
}

// Clone returns a deep copy. Engine transformations operate on copies so
// the input schedule is never mutated in place.
func (e *Event) Clone() Event {
	c := *e
	if e.Documents != nil {
		c.Documents = make([]string, len(e.Documents))
		copy(c.Documents, e.Documents)
	}
	if e.Checklist != nil {
		c.Checklist = make(map[string]bool, len(e.Checklist))
		for k, v := range e.Checklist {
			c.Checklist[k] = v
		}
	}
	return c
}

// DefaultChecklist returns the preparation steps every new event starts with.
func DefaultChecklist() map[string]bool {
	return map[string]bool{
		"documents":        false,
		"clientBriefed":    false,
		"evidenceVerified": false,
		"argumentsReady":   false,
	}
}
