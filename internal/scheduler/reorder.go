package scheduler

import (
	"errors"
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// ErrPositionOutOfRange rejects reorder targets outside the sequence.
var ErrPositionOutOfRange = errors.New("reorder position out of range")

// Reorder splices the identified event to newPos within the start-sorted
// sequence, then re-times the moved event and everything after it by
// walking forward from its new predecessor: each event keeps its own
// duration but starts at the previous event's end plus buffer. An event
// moved to the front keeps its own start and anchors the walk. A final
// reflow guarantees the buffer invariant holds transitively.
//
// The result is a new schedule; the input is not mutated.
func Reorder(events []domain.Event, id string, newPos int, buffer time.Duration) ([]domain.Event, error) {
	if buffer < 0 {
		return nil, ErrNegativeBuffer
	}
	out := SortByStart(events)
	if newPos < 0 || newPos >= len(out) {
		return nil, ErrPositionOutOfRange
	}

	from := -1
	for i := range out {
		if out[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, ErrEventNotFound
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:newPos], append([]domain.Event{moved}, out[newPos:]...)...)

	retimeFrom := newPos
	if retimeFrom == 0 {
		retimeFrom = 1
	}
	for i := retimeFrom; i < len(out); i++ {
		dur := out[i].Duration()
		out[i].Start = out[i-1].End.Add(buffer)
		out[i].End = out[i].Start.Add(dur)
	}

	return Reflow(out, buffer)
}
