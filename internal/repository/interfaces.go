package repository

import (
	"context"

	"github.com/nyayak/docket/internal/domain"
)

// EventRepo persists docket events. List returns events ordered by start
// time; ReplaceAll swaps the full schedule in one call and is how reflow
// results land (callers run it inside a transaction).
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, events []*domain.Event) error
}

// SettingsRepo stores operator-tunable values that must survive restarts,
// keyed by name. Today that is just the reflow buffer.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
