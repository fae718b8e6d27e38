package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/nyayak/docket/internal/domain"
	"github.com/nyayak/docket/internal/repository"
	"github.com/nyayak/docket/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventRepo(t *testing.T) *repository.SQLiteEventRepo {
	t.Helper()
	return repository.NewSQLiteEventRepo(testutil.NewTestDB(t))
}

func TestEventRepo_CreateAndGet(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEvent("Mehta v. State hearing", testutil.At(2026, 3, 10, 10, 0), 90*time.Minute,
		testutil.WithKind(domain.KindCourt),
		testutil.WithLocation("District Court, Saket"),
		testutil.WithClient("R. Mehta"),
		testutil.WithDistance(12.5),
		testutil.WithDocuments("vakalatnama.pdf", "written-statement.pdf"),
		testutil.WithRiskFlags(domain.RiskFlags{TightDeadline: true}),
	)
	e.CaseReference = "CS/482/2026"
	e.OpposingCounsel = "S. Rao"
	e.Courtroom = "Court 14"
	e.Notes = "carry certified copies"
	e.Checklist["documents"] = true

	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, domain.KindCourt, got.Kind)
	assert.True(t, got.Start.Equal(e.Start))
	assert.True(t, got.End.Equal(e.End))
	assert.Equal(t, "CS/482/2026", got.CaseReference)
	assert.Equal(t, "S. Rao", got.OpposingCounsel)
	assert.Equal(t, "Court 14", got.Courtroom)
	assert.Equal(t, 12.5, got.DistanceKm)
	assert.Equal(t, []string{"vakalatnama.pdf", "written-statement.pdf"}, got.Documents)
	assert.True(t, got.Checklist["documents"])
	assert.False(t, got.Checklist["clientBriefed"])
	assert.True(t, got.RiskFlags.TightDeadline)
	assert.False(t, got.RiskFlags.MissingDocuments)
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	repo := newEventRepo(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventRepo_List_OrderedByStart(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	late := testutil.NewTestEvent("afternoon", testutil.At(2026, 3, 10, 15, 0), time.Hour)
	early := testutil.NewTestEvent("morning", testutil.At(2026, 3, 10, 9, 0), time.Hour)
	mid := testutil.NewTestEvent("midday", testutil.At(2026, 3, 10, 12, 0), time.Hour)
	for _, e := range []*domain.Event{late, early, mid} {
		require.NoError(t, repo.Create(ctx, e))
	}

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "morning", events[0].Title)
	assert.Equal(t, "midday", events[1].Title)
	assert.Equal(t, "afternoon", events[2].Title)
}

func TestEventRepo_Update(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEvent("briefing", testutil.At(2026, 3, 10, 11, 0), 45*time.Minute)
	require.NoError(t, repo.Create(ctx, e))

	e.Start = testutil.At(2026, 3, 10, 11, 30)
	e.End = e.Start.Add(45 * time.Minute)
	e.Notes = "pushed by reflow"
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(e.Start))
	assert.Equal(t, "pushed by reflow", got.Notes)
}

func TestEventRepo_Update_NotFound(t *testing.T) {
	repo := newEventRepo(t)

	e := testutil.NewTestEvent("ghost", testutil.At(2026, 3, 10, 11, 0), time.Hour)
	err := repo.Update(context.Background(), e)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventRepo_Delete(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEvent("to remove", testutil.At(2026, 3, 10, 11, 0), time.Hour)
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	_, err := repo.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, e.ID), repository.ErrNotFound)
}

func TestEventRepo_ReplaceAll(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	a := testutil.NewTestEvent("a", testutil.At(2026, 3, 10, 9, 0), time.Hour)
	b := testutil.NewTestEvent("b", testutil.At(2026, 3, 10, 11, 0), time.Hour)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	// New schedule: a shifted, b gone, c added.
	a2 := a.Clone()
	a2.Start = testutil.At(2026, 3, 10, 9, 30)
	a2.End = a2.Start.Add(time.Hour)
	c := testutil.NewTestEvent("c", testutil.At(2026, 3, 10, 13, 0), time.Hour)
	require.NoError(t, repo.ReplaceAll(ctx, []*domain.Event{&a2, c}))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].Title)
	assert.True(t, events[0].Start.Equal(a2.Start))
	assert.True(t, events[0].CreatedAt.Equal(a.CreatedAt.UTC().Truncate(time.Second)),
		"surviving event keeps its original created_at")
	assert.Equal(t, "c", events[1].Title)
}

func TestEventRepo_TimesStoredUTC(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	ist := time.FixedZone("IST", 5*3600+1800)
	start := time.Date(2026, 3, 10, 14, 30, 0, 0, ist)
	e := testutil.NewTestEvent("tz check", start, time.Hour)
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Start.Location())
	assert.True(t, got.Start.Equal(start))
}
