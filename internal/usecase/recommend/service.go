package recommend

import (
	"context"
	"fmt"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/observability/metrics"
	"techdiet/internal/repository"
)

// SourceLister lists the combined catalog. Implemented by the catalog use case.
type SourceLister interface {
	List(ctx context.Context) ([]*entity.MediaSource, error)
}

// GoalTracker is the slice of the goal use case the engine needs.
type GoalTracker interface {
	ResetWeekIfNeeded(ctx context.Context, today time.Time) error
	Get(ctx context.Context, today time.Time) (*entity.WeeklyGoal, error)
}

// Service feeds the pure ranking function with live state.
type Service struct {
	Entries repository.EntryRepository
	Catalog SourceLister
	Goal    GoalTracker
	// DailyEssentialID designates the always-consider daily brief source.
	DailyEssentialID string
}

// Daily returns today's recommendations. It first rolls the goal week
// forward if needed so the weekend catch-up pass sees current progress.
func (s *Service) Daily(ctx context.Context, today time.Time) ([]Recommendation, error) {
	if err := s.Goal.ResetWeekIfNeeded(ctx, today); err != nil {
		return nil, fmt.Errorf("reset week: %w", err)
	}
	g, err := s.Goal.Get(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get weekly goal: %w", err)
	}

	entries, err := s.Entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	sources, err := s.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	recs := Daily(Input{
		Entries:          entries,
		Sources:          sources,
		Today:            today,
		WeekProgress:     g.Current,
		Target:           g.Target,
		DailyEssentialID: s.DailyEssentialID,
	})
	for _, r := range recs {
		metrics.RecordRecommendationServed(r.Priority)
	}
	return recs, nil
}
