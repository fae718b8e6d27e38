package service

import (
	"context"
	"io"
	"time"

	"github.com/nyayak/docket/internal/contract"
	"github.com/nyayak/docket/internal/domain"
)

// DocketService is the application surface over the schedule. Every
// mutation recomputes placement and re-arms reminders before returning;
// every view derives priority at query time.
type DocketService interface {
	Create(ctx context.Context, req contract.CreateEventRequest) (*contract.CreateEventResult, error)
	Delay(ctx context.Context, id string, minutes int) error
	Reorder(ctx context.Context, id string, newPosition int) error
	Remove(ctx context.Context, id string) error

	SetBuffer(ctx context.Context, minutes int) error
	Buffer(ctx context.Context) (int, error)
	ToggleChecklist(ctx context.Context, id, item string) (bool, error)

	GetDayView(ctx context.Context, date time.Time) (*contract.DayViewResponse, error)
	GetWeekView(ctx context.Context, anchor time.Time) (*contract.WeekViewResponse, error)
	GetMonthView(ctx context.Context, year int, month time.Month) (*contract.MonthViewResponse, error)
	SuggestSlot(ctx context.Context, day time.Time, durationMinutes int) (*contract.SlotSuggestion, error)

	Export(ctx context.Context, w io.Writer) error
}

// Rearmer re-arms reminder timers against a schedule snapshot. Satisfied
// by *reminder.Scheduler.
type Rearmer interface {
	Rearm(events []domain.Event)
}
