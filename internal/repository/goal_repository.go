package repository

import (
	"context"

	"techdiet/internal/domain/entity"
)

// GoalRepository persists the single weekly goal row.
type GoalRepository interface {
	// Get returns the stored goal, or (nil, nil) if none has been saved yet.
	Get(ctx context.Context) (*entity.WeeklyGoal, error)
	// Save stores the goal as a whole-state replacement.
	Save(ctx context.Context, goal *entity.WeeklyGoal) error
}
