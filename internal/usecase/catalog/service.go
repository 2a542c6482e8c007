package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"techdiet/internal/domain/entity"
	"techdiet/internal/repository"
)

// CreateInput represents the input parameters for adding a custom source.
// ID is optional; when empty an id is derived from the name.
type CreateInput struct {
	ID          string
	Name        string
	Type        entity.MediaType
	Frequency   string
	PublishDays []time.Weekday
	Duration    string
	Topics      []string
	BestFor     []string
	URL         string
}

// Service provides catalog use cases over the built-in seed and the custom
// source repository. Built-ins always come first in listings and are never
// deletable.
type Service struct {
	BuiltIn []*entity.MediaSource
	Custom  repository.CustomSourceRepository
}

// List returns the combined catalog: built-in sources followed by custom
// sources, both in stable order.
func (s *Service) List(ctx context.Context) ([]*entity.MediaSource, error) {
	custom, err := s.Custom.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom sources: %w", err)
	}
	out := make([]*entity.MediaSource, 0, len(s.BuiltIn)+len(custom))
	out = append(out, s.BuiltIn...)
	out = append(out, custom...)
	return out, nil
}

// Resolve returns the source with the given id from the combined catalog.
// Returns ErrSourceNotFound if no built-in or custom source matches.
func (s *Service) Resolve(ctx context.Context, id string) (*entity.MediaSource, error) {
	for _, src := range s.BuiltIn {
		if src.ID == id {
			return src, nil
		}
	}
	src, err := s.Custom.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get custom source: %w", err)
	}
	if src == nil {
		return nil, ErrSourceNotFound
	}
	return src, nil
}

// AddCustom validates and stores a user-added source.
// Returns a ValidationError when required fields are missing and
// ErrDuplicateSource when the id collides with any existing source.
func (s *Service) AddCustom(ctx context.Context, in CreateInput) (*entity.MediaSource, error) {
	src := &entity.MediaSource{
		ID:          in.ID,
		Name:        in.Name,
		Type:        in.Type,
		Frequency:   in.Frequency,
		PublishDays: in.PublishDays,
		Duration:    in.Duration,
		Topics:      in.Topics,
		BestFor:     in.BestFor,
		URL:         in.URL,
	}
	if src.ID == "" {
		src.ID = customID(in.Name)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Resolve(ctx, src.ID); err == nil {
		return nil, ErrDuplicateSource
	} else if !errors.Is(err, ErrSourceNotFound) {
		return nil, err
	}

	if err := s.Custom.Create(ctx, src); err != nil {
		return nil, fmt.Errorf("create custom source: %w", err)
	}
	return src, nil
}

// DeleteCustom removes a custom source. Unknown ids and built-in ids are
// benign no-ops: built-ins are never deletable and deletes are idempotent.
// Existing log entries keep their denormalized copy of the source.
func (s *Service) DeleteCustom(ctx context.Context, id string) error {
	for _, src := range s.BuiltIn {
		if src.ID == id {
			return nil
		}
	}
	if err := s.Custom.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete custom source: %w", err)
	}
	return nil
}

// customID derives a catalog id for a user-added source. A slug of the name
// keeps ids readable; the random suffix keeps them collision-free when two
// customs share a name.
func customID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "custom"
	}
	return slug + "-" + uuid.NewString()[:8]
}
