package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nyayak/docket/internal/db"
	"github.com/nyayak/docket/internal/domain"
)

// ErrNotFound is returned when no event matches the requested ID.
var ErrNotFound = errors.New("event not found")

// eventColumns is the canonical SELECT column list for events.
const eventColumns = `id, title, kind, start_at, end_at, location,
		case_reference, client, opposing_counsel, courtroom,
		documents, notes, distance_km, checklist,
		missing_docs, tight_deadline, aggressive_opp,
		created_at, updated_at`

// SQLiteEventRepo implements EventRepo over SQLite. It accepts a db.DBTX
// so the same repo runs against the raw handle or inside a transaction.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	docs, err := jsonEncode(e.Documents)
	if err != nil {
		return err
	}
	checklist, err := jsonEncode(e.Checklist)
	if err != nil {
		return err
	}

	query := `INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		string(e.Kind),
		timeToString(e.Start),
		timeToString(e.End),
		e.Location,
		e.CaseReference,
		e.Client,
		e.OpposingCounsel,
		e.Courtroom,
		docs,
		e.Notes,
		e.DistanceKm,
		checklist,
		boolToInt(e.RiskFlags.MissingDocuments),
		boolToInt(e.RiskFlags.TightDeadline),
		boolToInt(e.RiskFlags.AggressiveCounterparty),
		timeToString(e.CreatedAt),
		timeToString(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (r *SQLiteEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.Event) error {
	docs, err := jsonEncode(e.Documents)
	if err != nil {
		return err
	}
	checklist, err := jsonEncode(e.Checklist)
	if err != nil {
		return err
	}

	query := `UPDATE events SET
		title = ?, kind = ?, start_at = ?, end_at = ?, location = ?,
		case_reference = ?, client = ?, opposing_counsel = ?, courtroom = ?,
		documents = ?, notes = ?, distance_km = ?, checklist = ?,
		missing_docs = ?, tight_deadline = ?, aggressive_opp = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Title,
		string(e.Kind),
		timeToString(e.Start),
		timeToString(e.End),
		e.Location,
		e.CaseReference,
		e.Client,
		e.OpposingCounsel,
		e.Courtroom,
		docs,
		e.Notes,
		e.DistanceKm,
		checklist,
		boolToInt(e.RiskFlags.MissingDocuments),
		boolToInt(e.RiskFlags.TightDeadline),
		boolToInt(e.RiskFlags.AggressiveCounterparty),
		timeToString(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll persists a full recomputed schedule. Events already present
// are updated in place so created_at survives; anything absent from the
// new set is removed.
func (r *SQLiteEventRepo) ReplaceAll(ctx context.Context, events []*domain.Event) error {
	keep := make(map[string]bool, len(events))
	for _, e := range events {
		keep[e.ID] = true
	}

	existing := make(map[string]bool)
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM events`)
	if err != nil {
		return fmt.Errorf("listing event ids: %w", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning event id: %w", err)
		}
		existing[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating event ids: %w", err)
	}

	for id := range existing {
		if !keep[id] {
			if err := r.Delete(ctx, id); err != nil {
				return err
			}
		}
	}
	for _, e := range events {
		if existing[e.ID] {
			if err := r.Update(ctx, e); err != nil {
				return err
			}
		} else {
			if err := r.Create(ctx, e); err != nil {
				return err
			}
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	var kind, startAt, endAt, docsRaw, checklistRaw, createdAt, updatedAt string
	var missingDocs, tightDL, aggressive int
	err := s.Scan(
		&e.ID, &e.Title, &kind, &startAt, &endAt, &e.Location,
		&e.CaseReference, &e.Client, &e.OpposingCounsel, &e.Courtroom,
		&docsRaw, &e.Notes, &e.DistanceKm, &checklistRaw,
		&missingDocs, &tightDL, &aggressive,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	e.Kind = domain.EventKind(kind)
	if e.Start, err = parseTime(startAt); err != nil {
		return nil, err
	}
	if e.End, err = parseTime(endAt); err != nil {
		return nil, err
	}
	if err := jsonDecode(docsRaw, &e.Documents); err != nil {
		return nil, err
	}
	if err := jsonDecode(checklistRaw, &e.Checklist); err != nil {
		return nil, err
	}
	e.RiskFlags.MissingDocuments = intToBool(missingDocs)
	e.RiskFlags.TightDeadline = intToBool(tightDL)
	e.RiskFlags.AggressiveCounterparty = intToBool(aggressive)
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
