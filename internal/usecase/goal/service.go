// Package goal provides use cases for the weekly consumption goal: reading
// recomputed progress, rolling the tracked week forward, and adjusting the
// target.
package goal

import (
	"context"
	"fmt"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/observability/metrics"
	"techdiet/internal/pkg/dateutil"
	"techdiet/internal/repository"
)

// Service provides weekly goal use cases. Progress is always recomputed from
// the entry log rather than read from a stored counter, so edits and deletes
// in any order leave it correct.
type Service struct {
	Goals   repository.GoalRepository
	Entries repository.EntryRepository
	// DefaultTarget seeds the goal row on first use; zero means
	// entity.DefaultWeeklyTarget.
	DefaultTarget int
}

// Get returns the stored goal with its Current field refreshed from the log,
// initializing a default goal anchored to today's week on first use. A stale
// tracked week is rolled forward first, so a read after a week boundary never
// reports last week's window as current.
func (s *Service) Get(ctx context.Context, today time.Time) (*entity.WeeklyGoal, error) {
	if err := s.ResetWeekIfNeeded(ctx, today); err != nil {
		return nil, err
	}
	g, err := s.ensure(ctx, today)
	if err != nil {
		return nil, err
	}
	progress, err := s.progress(ctx, g)
	if err != nil {
		return nil, err
	}
	g.Current = progress
	return g, nil
}

// WeekProgress recomputes the number of entries logged within the tracked
// week, counting entries with date >= weekStart.
func (s *Service) WeekProgress(ctx context.Context, today time.Time) (int, error) {
	g, err := s.ensure(ctx, today)
	if err != nil {
		return 0, err
	}
	return s.progress(ctx, g)
}

// ResetWeekIfNeeded advances the goal to the week containing today when that
// week is strictly later than the tracked one. Safe to call any number of
// times; within the same week it is a no-op.
func (s *Service) ResetWeekIfNeeded(ctx context.Context, today time.Time) error {
	g, err := s.ensure(ctx, today)
	if err != nil {
		return err
	}
	if !g.NeedsReset(today) {
		return nil
	}

	g.Current = 0
	g.WeekStart = dateutil.StartOfWeek(today)
	if err := s.Goals.Save(ctx, g); err != nil {
		return fmt.Errorf("save weekly goal: %w", err)
	}
	metrics.RecordWeekReset()
	return nil
}

// UpdateTarget changes the weekly target without touching the tracked week.
func (s *Service) UpdateTarget(ctx context.Context, today time.Time, target int) error {
	if target <= 0 {
		return &entity.ValidationError{Field: "target", Message: "must be positive"}
	}
	g, err := s.ensure(ctx, today)
	if err != nil {
		return err
	}
	g.Target = target
	if err := s.Goals.Save(ctx, g); err != nil {
		return fmt.Errorf("save weekly goal: %w", err)
	}
	return nil
}

// ensure loads the goal row, creating and persisting a default one anchored
// to today's week when none exists yet.
func (s *Service) ensure(ctx context.Context, today time.Time) (*entity.WeeklyGoal, error) {
	g, err := s.Goals.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get weekly goal: %w", err)
	}
	if g != nil {
		return g, nil
	}

	g = entity.NewWeeklyGoal(s.DefaultTarget, today)
	if err := s.Goals.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("init weekly goal: %w", err)
	}
	return g, nil
}

func (s *Service) progress(ctx context.Context, g *entity.WeeklyGoal) (int, error) {
	count, err := s.Entries.CountSince(ctx, g.WeekStart)
	if err != nil {
		return 0, fmt.Errorf("count entries since week start: %w", err)
	}
	metrics.UpdateWeeklyProgress(count)
	return count, nil
}
