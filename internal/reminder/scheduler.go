package reminder

import (
	"sync"
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// Observed defaults: remind 10 minutes before start, never arm further
// out than 6 hours.
const (
	DefaultLead    = 10 * time.Minute
	DefaultHorizon = 6 * time.Hour
)

// Signal is the fire-and-forget payload handed to the notification
// collaborator when a reminder fires.
type Signal struct {
	EventID string
	Title   string
	FireAt  time.Time
	StartAt time.Time
}

// Scheduler owns the ephemeral reminder timers for one operator's docket.
// Rearm replaces the entire armed set on every schedule recompute, so at
// any instant an event has at most one live timer. Firing only emits a
// Signal; it never mutates the schedule.
type Scheduler struct {
	mu       sync.Mutex
	clock    Clock
	newTimer TimerFactory
	lead     time.Duration
	horizon  time.Duration
	emit     func(Signal)
	armed    map[string]*armedTimer
}

// armedTimer wraps a Timer so a callback already in flight when its entry
// is replaced can tell it has been superseded and must not emit.
type armedTimer struct {
	t Timer
}

// NewScheduler wires a reminder scheduler. emit receives each fired
// reminder; it must not block for long and must not touch the schedule.
func NewScheduler(clock Clock, newTimer TimerFactory, lead, horizon time.Duration, emit func(Signal)) *Scheduler {
	return &Scheduler{
		clock:    clock,
		newTimer: newTimer,
		lead:     lead,
		horizon:  horizon,
		emit:     emit,
		armed:    make(map[string]*armedTimer),
	}
}

// Rearm cancels every armed timer, then arms one timer per event whose
// lead time is still in the future and within the look-ahead horizon.
// Events whose lead time has passed are skipped silently: that is
// steady-state behavior, not a fault. Cancellation happens before arming
// so a stale timer can never fire for an event that has moved.
func (s *Scheduler) Rearm(events []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAllLocked()

	now := s.clock.Now()
	for _, e := range events {
		fireAt := e.Start.Add(-s.lead)
		wait := fireAt.Sub(now)
		if wait <= 0 || wait >= s.horizon {
			continue
		}
		sig := Signal{EventID: e.ID, Title: e.Title, FireAt: fireAt, StartAt: e.Start}
		id := e.ID
		entry := &armedTimer{}
		entry.t = s.newTimer(wait, func() {
			s.mu.Lock()
			live := s.armed[id] == entry
			if live {
				delete(s.armed, id)
			}
			s.mu.Unlock()
			if live {
				s.emit(sig)
			}
		})
		s.armed[id] = entry
	}
}

// Stop cancels all armed timers. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
}

// ArmedCount returns the number of live timers.
func (s *Scheduler) ArmedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.armed)
}

func (s *Scheduler) cancelAllLocked() {
	for id, entry := range s.armed {
		entry.t.Stop()
		delete(s.armed, id)
	}
}
