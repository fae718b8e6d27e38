package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/nyayak/docket/internal/config"
	"github.com/nyayak/docket/internal/contract"
	"github.com/nyayak/docket/internal/db"
	"github.com/nyayak/docket/internal/domain"
	"github.com/nyayak/docket/internal/notify"
	"github.com/nyayak/docket/internal/reminder"
	"github.com/nyayak/docket/internal/repository"
	"github.com/nyayak/docket/internal/scheduler"
)

// ErrUnknownChecklistItem is returned when toggling a checklist entry the
// event does not carry.
var ErrUnknownChecklistItem = errors.New("unknown checklist item")

// ErrInvalidDuration is returned when a creation request names a
// non-positive duration.
var ErrInvalidDuration = errors.New("duration must be positive")

const bufferSettingKey = "buffer_minutes"

type docketService struct {
	// mu serializes mutations so each recompute reads one consistent
	// buffer value and schedule snapshot.
	mu sync.Mutex

	events    repository.EventRepo
	settings  repository.SettingsRepo
	uow       db.UnitOfWork
	reminders Rearmer
	notifier  notify.Notifier
	clock     reminder.Clock
	cfg       *config.Config
	observer  UseCaseObserver
}

// NewDocketService wires the schedule engine to persistence, reminders
// and notifications. Pass a NoopUseCaseObserver to disable telemetry.
func NewDocketService(
	events repository.EventRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	reminders Rearmer,
	notifier notify.Notifier,
	clock reminder.Clock,
	cfg *config.Config,
	observer UseCaseObserver,
) DocketService {
	return &docketService{
		events:    events,
		settings:  settings,
		uow:       uow,
		reminders: reminders,
		notifier:  notifier,
		clock:     clock,
		cfg:       cfg,
		observer:  observer,
	}
}

func (s *docketService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func (s *docketService) Create(ctx context.Context, req contract.CreateEventRequest) (*contract.CreateEventResult, error) {
	started := time.Now()
	result, err := s.create(ctx, req)
	s.observe(ctx, "create_event", started, err, map[string]any{"title": req.Title, "kind": req.Kind})
	return result, err
}

func (s *docketService) create(ctx context.Context, req contract.CreateEventRequest) (*contract.CreateEventResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base, err := s.buildEvent(req)
	if err != nil {
		return nil, err
	}

	buffer, err := s.bufferLocked(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.listValues(ctx)
	if err != nil {
		return nil, err
	}

	result := &contract.CreateEventResult{}
	requestedStart := base.Start

	created := []domain.Event{*base}
	if req.Repeat == string(domain.RepeatWeekly4) {
		copies, err := weeklyCopies(base)
		if err != nil {
			return nil, err
		}
		created = append(created, copies...)
	}

	merged := append(existing, created...)
	for _, o := range scheduler.DetectOverlaps(scheduler.SortByStart(merged)) {
		result.Conflicts = append(result.Conflicts, fmt.Sprintf("%s overlaps %s", o.A.Title, o.B.Title))
		s.notifier.ConflictDetected(o.A.Title, o.B.Title)
	}

	reflowed, err := scheduler.Reflow(merged, buffer)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, reflowed); err != nil {
		return nil, err
	}
	s.reminders.Rearm(reflowed)

	now := s.clock.Now().UTC()
	createdIDs := make(map[string]bool, len(created))
	for _, e := range created {
		createdIDs[e.ID] = true
	}
	for _, e := range reflowed {
		if !createdIDs[e.ID] {
			continue
		}
		if e.ID == base.ID && !e.Start.Equal(requestedStart) {
			result.SlotAdjusted = true
		}
		result.Created = append(result.Created, s.toView(e, now, buffer))
	}
	return result, nil
}

func (s *docketService) buildEvent(req contract.CreateEventRequest) (*domain.Event, error) {
	if !domain.ValidEventKinds[req.Kind] {
		return nil, domain.ErrInvalidKind
	}
	kind := domain.EventKind(req.Kind)
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Repeat != "" && !domain.ValidRepeatPolicies[req.Repeat] {
		return nil, fmt.Errorf("invalid repeat policy %q", req.Repeat)
	}

	start, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.Time)
	if err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	start = roundToInterval(start.UTC(), s.cfg.RoundToMinutes)

	now := s.clock.Now().UTC()
	e := &domain.Event{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Kind:            kind,
		Start:           start,
		End:             start.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Location:        req.Location,
		CaseReference:   req.CaseReference,
		Client:          req.Client,
		OpposingCounsel: req.OpposingCounsel,
		Courtroom:       req.Courtroom,
		Documents:       append([]string(nil), req.Documents...),
		Notes:           req.Notes,
		DistanceKm:      req.DistanceKm,
		Checklist:       domain.DefaultChecklist(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	e.RiskFlags.MissingDocuments = kind == domain.KindCourt && len(e.Documents) == 0

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// weeklyCopies expands a weekly-4 repeat into four additional events,
// each seven days after the previous occurrence.
func weeklyCopies(base *domain.Event) ([]domain.Event, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Count:   5,
		Dtstart: base.Start,
	})
	if err != nil {
		return nil, fmt.Errorf("building repeat rule: %w", err)
	}

	duration := base.Duration()
	var copies []domain.Event
	for _, occurrence := range rule.All()[1:] {
		c := base.Clone()
		c.ID = uuid.New().String()
		c.Start = occurrence.UTC()
		c.End = c.Start.Add(duration)
		copies = append(copies, c)
	}
	return copies, nil
}

func (s *docketService) Delay(ctx context.Context, id string, minutes int) error {
	started := time.Now()
	err := s.delay(ctx, id, minutes)
	s.observe(ctx, "delay_event", started, err, map[string]any{"event_id": id, "minutes": minutes})
	return err
}

func (s *docketService) delay(ctx context.Context, id string, minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buffer, err := s.bufferLocked(ctx)
	if err != nil {
		return err
	}
	events, err := s.listValues(ctx)
	if err != nil {
		return err
	}

	delayed, err := scheduler.Delay(events, id, minutes, buffer)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, delayed); err != nil {
		return err
	}
	s.reminders.Rearm(delayed)

	for _, e := range delayed {
		if e.ID == id && e.Client != "" {
			s.notifier.DelayNotice(e.Client, e.Title, minutes)
		}
	}
	return nil
}

func (s *docketService) Reorder(ctx context.Context, id string, newPosition int) error {
	started := time.Now()
	err := s.reorder(ctx, id, newPosition)
	s.observe(ctx, "reorder_event", started, err, map[string]any{"event_id": id, "position": newPosition})
	return err
}

func (s *docketService) reorder(ctx context.Context, id string, newPosition int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buffer, err := s.bufferLocked(ctx)
	if err != nil {
		return err
	}
	events, err := s.listValues(ctx)
	if err != nil {
		return err
	}

	reordered, err := scheduler.Reorder(events, id, newPosition, buffer)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, reordered); err != nil {
		return err
	}
	s.reminders.Rearm(reordered)
	return nil
}

// Remove deletes an event. Remaining events keep their times; removal
// never compacts the gap it leaves.
func (s *docketService) Remove(ctx context.Context, id string) error {
	started := time.Now()
	err := s.remove(ctx, id)
	s.observe(ctx, "remove_event", started, err, map[string]any{"event_id": id})
	return err
}

func (s *docketService) remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	remaining, err := s.listValues(ctx)
	if err != nil {
		return err
	}
	s.reminders.Rearm(remaining)
	return nil
}

// SetBuffer persists a new reflow gap. It takes effect on the next
// recompute; stored times are not rewritten here.
func (s *docketService) SetBuffer(ctx context.Context, minutes int) error {
	started := time.Now()
	err := s.setBuffer(ctx, minutes)
	s.observe(ctx, "set_buffer", started, err, map[string]any{"minutes": minutes})
	return err
}

func (s *docketService) setBuffer(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return scheduler.ErrNegativeBuffer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Set(ctx, bufferSettingKey, strconv.Itoa(minutes))
}

func (s *docketService) Buffer(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.bufferLocked(ctx)
	if err != nil {
		return 0, err
	}
	return int(d / time.Minute), nil
}

// bufferLocked reads the buffer exactly once per recompute. Callers hold
// s.mu.
func (s *docketService) bufferLocked(ctx context.Context) (time.Duration, error) {
	raw, err := s.settings.Get(ctx, bufferSettingKey)
	if errors.Is(err, repository.ErrSettingNotFound) {
		return time.Duration(s.cfg.BufferMinutes) * time.Minute, nil
	}
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing stored buffer %q: %w", raw, err)
	}
	if minutes < 0 {
		return 0, scheduler.ErrNegativeBuffer
	}
	return time.Duration(minutes) * time.Minute, nil
}

func (s *docketService) ToggleChecklist(ctx context.Context, id, item string) (bool, error) {
	started := time.Now()
	value, err := s.toggleChecklist(ctx, id, item)
	s.observe(ctx, "toggle_checklist", started, err, map[string]any{"event_id": id, "item": item})
	return value, err
}

func (s *docketService) toggleChecklist(ctx context.Context, id, item string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if _, ok := e.Checklist[item]; !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownChecklistItem, item)
	}
	e.Checklist[item] = !e.Checklist[item]
	e.UpdatedAt = s.clock.Now().UTC()
	if err := s.events.Update(ctx, e); err != nil {
		return false, err
	}
	return e.Checklist[item], nil
}

func (s *docketService) GetDayView(ctx context.Context, date time.Time) (*contract.DayViewResponse, error) {
	buffer, events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	dayEvents := scheduler.DayView(events, date)

	resp := &contract.DayViewResponse{
		Date:     date,
		Workload: contract.WorkloadView(scheduler.ComputeWorkload(dayEvents)),
	}
	for _, e := range dayEvents {
		resp.Events = append(resp.Events, s.toView(e, now, buffer))
	}
	for _, o := range scheduler.DetectOverlaps(dayEvents) {
		resp.Conflicts = append(resp.Conflicts, fmt.Sprintf("%s overlaps %s", o.A.Title, o.B.Title))
	}
	if up := scheduler.Upcoming(dayEvents, now); up != nil {
		view := s.toView(*up, now, buffer)
		resp.Upcoming = &view
		resp.Countdown = scheduler.Countdown(up, now)
	}
	if cur := scheduler.Current(dayEvents, now); cur != nil {
		view := s.toView(*cur, now, buffer)
		resp.Current = &view
	}
	return resp, nil
}

func (s *docketService) GetWeekView(ctx context.Context, anchor time.Time) (*contract.WeekViewResponse, error) {
	buffer, events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	resp := &contract.WeekViewResponse{}
	var weekEvents []domain.Event
	for _, bucket := range scheduler.WeekView(events, anchor) {
		group := contract.DayGroup{Date: bucket.Date}
		for _, e := range bucket.Events {
			group.Events = append(group.Events, s.toView(e, now, buffer))
			weekEvents = append(weekEvents, e)
		}
		resp.Days = append(resp.Days, group)
	}

	mix := scheduler.ComputeWeekMix(weekEvents)
	resp.CourtPct = mix.CourtPct
	resp.OfficePct = mix.OfficePct
	resp.ClientPct = mix.ClientPct
	return resp, nil
}

func (s *docketService) GetMonthView(ctx context.Context, year int, month time.Month) (*contract.MonthViewResponse, error) {
	buffer, events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	resp := &contract.MonthViewResponse{Year: year, Month: month}
	for _, bucket := range scheduler.MonthView(events, year, month, time.UTC) {
		group := contract.DayGroup{Date: bucket.Date}
		for _, e := range bucket.Events {
			group.Events = append(group.Events, s.toView(e, now, buffer))
		}
		resp.Days = append(resp.Days, group)
	}
	return resp, nil
}

func (s *docketService) SuggestSlot(ctx context.Context, day time.Time, durationMinutes int) (*contract.SlotSuggestion, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	buffer, events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	slot := scheduler.SuggestSlot(events, day, time.Duration(durationMinutes)*time.Minute, buffer, s.window())
	return &contract.SlotSuggestion{
		Start:         slot.Start,
		End:           slot.End,
		OutsideWindow: slot.OutsideWindow,
	}, nil
}

// Export writes the full schedule as an iCalendar stream.
func (s *docketService) Export(ctx context.Context, w io.Writer) error {
	started := time.Now()
	err := s.export(ctx, w)
	s.observe(ctx, "export_ics", started, err, nil)
	return err
}

func (s *docketService) export(ctx context.Context, w io.Writer) error {
	_, events, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//nyayak//docket//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetDtStampTime(e.UpdatedAt)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetSummary(e.Title)
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		description := string(e.Kind)
		if e.CaseReference != "" {
			description += " · " + e.CaseReference
		}
		if e.Notes != "" {
			description += " · " + e.Notes
		}
		ve.SetDescription(description)
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// snapshot reads the buffer and schedule under the mutation lock so
// views never observe a half-applied recompute.
func (s *docketService) snapshot(ctx context.Context) (time.Duration, []domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buffer, err := s.bufferLocked(ctx)
	if err != nil {
		return 0, nil, err
	}
	events, err := s.listValues(ctx)
	if err != nil {
		return 0, nil, err
	}
	return buffer, events, nil
}

func (s *docketService) listValues(ctx context.Context) ([]domain.Event, error) {
	stored, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(stored))
	for _, e := range stored {
		events = append(events, *e)
	}
	return events, nil
}

// persist replaces the stored schedule atomically.
func (s *docketService) persist(ctx context.Context, events []domain.Event) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		ptrs := make([]*domain.Event, len(events))
		for i := range events {
			ptrs[i] = &events[i]
		}
		return txEvents.ReplaceAll(ctx, ptrs)
	})
}

func (s *docketService) toView(e domain.Event, now time.Time, buffer time.Duration) contract.EventView {
	view := contract.EventView{
		ID:              e.ID,
		Title:           e.Title,
		Kind:            string(e.Kind),
		Start:           e.Start,
		End:             e.End,
		Location:        e.Location,
		CaseReference:   e.CaseReference,
		Client:          e.Client,
		OpposingCounsel: e.OpposingCounsel,
		Courtroom:       e.Courtroom,
		Documents:       append([]string(nil), e.Documents...),
		Notes:           e.Notes,
		DistanceKm:      e.DistanceKm,
		Checklist:       make(map[string]bool, len(e.Checklist)),
		MissingDocs:     e.RiskFlags.MissingDocuments,
		TightDeadline:   e.RiskFlags.TightDeadline,
		AggressiveOpp:   e.RiskFlags.AggressiveCounterparty,
		Priority:        string(scheduler.Classify(e, now)),
	}
	for k, v := range e.Checklist {
		view.Checklist[k] = v
	}
	if e.DistanceKm > 0 {
		view.TravelMinutes = scheduler.TravelMinutes(e.DistanceKm, s.cfg.TravelSpeedKmh)
		view.LeaveBy = scheduler.LeaveBy(e, buffer, s.cfg.TravelSpeedKmh)
	}
	return view
}

func (s *docketService) window() scheduler.WorkingWindow {
	return scheduler.WorkingWindow{
		OpenHour:  s.cfg.WorkdayOpenHour,
		CloseHour: s.cfg.WorkdayCloseHour,
	}
}

func roundToInterval(t time.Time, minutes int) time.Time {
	if minutes <= 0 {
		return t
	}
	return t.Round(time.Duration(minutes) * time.Minute)
}
