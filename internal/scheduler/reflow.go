package scheduler

import (
	"errors"
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// ErrNegativeBuffer indicates a buffer misconfiguration. A negative buffer
// would let reflow produce schedules that still conflict, so it is rejected
// outright rather than swallowed.
var ErrNegativeBuffer = errors.New("buffer must not be negative")

// Reflow returns a new schedule in which no event starts before the
// previous event's end plus buffer. Later events are pushed forward in
// start order, each keeping its original duration. Shifts are one-way:
// an event is never pulled earlier than its current start, and gaps opened
// by deletions are never compacted.
//
// Reflow is idempotent: applying it to an already-consistent schedule is
// a no-op.
func Reflow(events []domain.Event, buffer time.Duration) ([]domain.Event, error) {
	if buffer < 0 {
		return nil, ErrNegativeBuffer
	}
	out := SortByStart(events)
	for i := 0; i+1 < len(out); i++ {
		earliest := out[i].End.Add(buffer)
		if out[i+1].Start.Before(earliest) {
			dur := out[i+1].Duration()
			out[i+1].Start = earliest
			out[i+1].End = earliest.Add(dur)
		}
	}
	return out, nil
}

// Delay extends the end of the identified event by the given number of
// minutes, then reflows so downstream events absorb the overrun. Returns
// the new schedule; the input is untouched.
func Delay(events []domain.Event, id string, minutes int, buffer time.Duration) ([]domain.Event, error) {
	if minutes <= 0 {
		return nil, ErrNonPositiveDelay
	}
	out := SortByStart(events)
	found := false
	for i := range out {
		if out[i].ID == id {
			out[i].End = out[i].End.Add(time.Duration(minutes) * time.Minute)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrEventNotFound
	}
	return Reflow(out, buffer)
}

// ErrEventNotFound indicates the named event is not in the schedule.
var ErrEventNotFound = errors.New("event not found in schedule")

// ErrNonPositiveDelay rejects delay simulations that would not push an
// event's end forward.
var ErrNonPositiveDelay = errors.New("delay minutes must be positive")
