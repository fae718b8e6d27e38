package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/nyayak/docket/internal/config"
	"github.com/nyayak/docket/internal/domain"
	"github.com/nyayak/docket/internal/repository"
	"github.com/nyayak/docket/internal/service"
	"github.com/nyayak/docket/internal/testutil"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingRearmer struct {
	mu    sync.Mutex
	calls int
	last  []domain.Event
}

func (r *recordingRearmer) Rearm(events []domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.last = append([]domain.Event(nil), events...)
}

func (r *recordingRearmer) snapshot() (int, []domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls, append([]domain.Event(nil), r.last...)
}

type recordingNotifier struct {
	mu        sync.Mutex
	conflicts [][2]string
	delays    []string
}

func (n *recordingNotifier) Reminder(string, string, time.Time) {}

func (n *recordingNotifier) ConflictDetected(titleA, titleB string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.conflicts = append(n.conflicts, [2]string{titleA, titleB})
}

func (n *recordingNotifier) DelayNotice(client, title string, minutes int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delays = append(n.delays, client+"/"+title)
}

type harness struct {
	svc      service.DocketService
	clock    *fixedClock
	rearmer  *recordingRearmer
	notifier *recordingNotifier
	events   *repository.SQLiteEventRepo
}

// newHarness builds a service over an in-memory database with the clock
// fixed at 08:00 on the fixture day.
func newHarness(t *testing.T) *harness {
	t.Helper()

	conn := testutil.NewTestDB(t)
	clock := &fixedClock{now: testutil.At(2026, 3, 10, 8, 0)}
	rearmer := &recordingRearmer{}
	notifier := &recordingNotifier{}
	events := repository.NewSQLiteEventRepo(conn)

	svc := service.NewDocketService(
		events,
		repository.NewSQLiteSettingsRepo(conn),
		testutil.NewTestUoW(conn),
		rearmer,
		notifier,
		clock,
		config.Default(),
		service.NoopUseCaseObserver{},
	)
	return &harness{svc: svc, clock: clock, rearmer: rearmer, notifier: notifier, events: events}
}
