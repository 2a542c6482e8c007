// Package repository defines the persistence contracts the use cases depend
// on. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"techdiet/internal/domain/entity"
)

type EntryRepository interface {
	// List returns all entries in logging order (oldest first).
	List(ctx context.Context) ([]*entity.ConsumptionEntry, error)
	// Get returns the entry with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.ConsumptionEntry, error)
	Create(ctx context.Context, entry *entity.ConsumptionEntry) error
	Update(ctx context.Context, entry *entity.ConsumptionEntry) error
	// Delete removes the entry; deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	// CountSince counts entries logged at or after t. Used to recompute the
	// weekly progress instead of trusting an incremental counter.
	CountSince(ctx context.Context, t time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
