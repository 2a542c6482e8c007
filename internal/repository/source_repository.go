package repository

import (
	"context"

	"techdiet/internal/domain/entity"
)

// CustomSourceRepository persists user-added sources. Built-in sources are
// compiled into the binary and never hit storage.
type CustomSourceRepository interface {
	// List returns custom sources in creation order.
	List(ctx context.Context) ([]*entity.MediaSource, error)
	// Get returns the source with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.MediaSource, error)
	Create(ctx context.Context, source *entity.MediaSource) error
	// Delete removes the source; deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
