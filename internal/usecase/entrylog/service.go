package entrylog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"techdiet/internal/domain/entity"
	"techdiet/internal/observability/metrics"
	"techdiet/internal/repository"
)

// SourceResolver resolves a source id against the combined catalog.
// Implemented by the catalog use case.
type SourceResolver interface {
	Resolve(ctx context.Context, id string) (*entity.MediaSource, error)
}

// AddInput represents the input parameters for logging a new entry.
type AddInput struct {
	SourceID       string
	Title          string
	KeyInsight     string
	InterviewAngle string
}

// UpdateInput represents the input parameters for editing an entry.
// Nil fields are left unchanged; the source reference, denormalized source
// fields, and the log date are immutable after creation.
type UpdateInput struct {
	ID             string
	Title          *string
	KeyInsight     *string
	InterviewAngle *string
}

// Service provides entry log use cases.
type Service struct {
	Entries repository.EntryRepository
	Catalog SourceResolver
}

// Add logs a new consumption entry. It assigns a fresh id and the current
// timestamp, and copies name, type, and topics from the resolved source so
// later source edits cannot rewrite history.
// Returns the catalog's ErrSourceNotFound when the source id does not resolve.
func (s *Service) Add(ctx context.Context, in AddInput) (*entity.ConsumptionEntry, error) {
	src, err := s.Catalog.Resolve(ctx, in.SourceID)
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}

	entry := &entity.ConsumptionEntry{
		ID:             uuid.NewString(),
		SourceID:       src.ID,
		SourceName:     src.Name,
		Type:           src.Type,
		Topics:         append([]string(nil), src.Topics...),
		Title:          in.Title,
		Date:           time.Now(),
		KeyInsight:     in.KeyInsight,
		InterviewAngle: in.InterviewAngle,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.Entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	metrics.RecordEntryLogged(string(entry.Type))
	return entry, nil
}

// Update edits the mutable fields of an entry (title, key insight,
// interview angle). Returns ErrEntryNotFound if the id is absent.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}

	entry, err := s.Entries.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	if in.Title != nil {
		entry.Title = *in.Title
	}
	if in.KeyInsight != nil {
		entry.KeyInsight = *in.KeyInsight
	}
	if in.InterviewAngle != nil {
		entry.InterviewAngle = *in.InterviewAngle
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.Entries.Update(ctx, entry); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete removes an entry. Deleting an absent id is an idempotent no-op.
// The weekly counter is never decremented here: progress is recomputed from
// the log on every read, so deletion needs no bookkeeping.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	metrics.RecordEntryDeleted()
	return nil
}

// List returns the log newest-first, the order the log view renders.
func (s *Service) List(ctx context.Context) ([]*entity.ConsumptionEntry, error) {
	entries, err := s.Entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]*entity.ConsumptionEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out, nil
}
