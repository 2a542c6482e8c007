package streak

import (
	"context"
	"fmt"
	"time"

	"techdiet/internal/observability/metrics"
	"techdiet/internal/repository"
)

// Service feeds the pure calculator with the stored log.
type Service struct {
	Entries repository.EntryRepository
}

// Stats returns streak statistics as of today.
func (s *Service) Stats(ctx context.Context, today time.Time) (Stats, error) {
	entries, err := s.Entries.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list entries: %w", err)
	}
	stats := Calculate(entries, today)
	metrics.UpdateCurrentStreak(stats.CurrentStreak)
	return stats, nil
}
