package scheduler

import (
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// DayBucket groups the events of one calendar day, time-sorted.
type DayBucket struct {
	Date   time.Time
	Events []domain.Event
}

// DayView returns the events whose start falls on the given calendar day,
// sorted by start. Bucketing is by date equality, not time-of-day, so an
// event appears in exactly one day bucket.
func DayView(events []domain.Event, date time.Time) []domain.Event {
	var out []domain.Event
	for _, e := range SortByStart(events) {
		if sameDate(e.Start, date) {
			out = append(out, e)
		}
	}
	return out
}

// WeekView returns seven day buckets for the week containing anchor,
// starting on Monday. Every bucket is present even when empty.
func WeekView(events []domain.Event, anchor time.Time) []DayBucket {
	start := StartOfWeek(anchor)
	buckets := make([]DayBucket, 7)
	for i := range buckets {
		day := start.AddDate(0, 0, i)
		buckets[i] = DayBucket{Date: day, Events: DayView(events, day)}
	}
	return buckets
}

// MonthView returns one bucket per day of the given month. The week and
// month buckets containing a day are referentially consistent with that
// day's bucket: the same events, grouped by the same date key.
func MonthView(events []domain.Event, year int, month time.Month, loc *time.Location) []DayBucket {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	var buckets []DayBucket
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, DayBucket{Date: day, Events: DayView(events, day)})
	}
	return buckets
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	back := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -back)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
