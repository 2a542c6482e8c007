package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"techdiet/internal/domain/entity"
	"techdiet/internal/repository"
)

// GoalRepo persists the weekly goal as a single row (id = 1). Current
// progress is never stored; it is recomputed from the entry log.
type GoalRepo struct{ db repository.DBTX }

func NewGoalRepo(db repository.DBTX) repository.GoalRepository {
	return &GoalRepo{db: db}
}

func (repo *GoalRepo) Get(ctx context.Context) (*entity.WeeklyGoal, error) {
	const query = `
SELECT target, week_start
FROM weekly_goal
WHERE id = 1
LIMIT 1`
	var goal entity.WeeklyGoal
	err := repo.db.QueryRowContext(ctx, query).Scan(&goal.Target, &goal.WeekStart)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &goal, nil
}

func (repo *GoalRepo) Save(ctx context.Context, goal *entity.WeeklyGoal) error {
	const query = `
INSERT INTO weekly_goal (id, target, week_start)
VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE SET target = EXCLUDED.target, week_start = EXCLUDED.week_start`
	if _, err := repo.db.ExecContext(ctx, query, goal.Target, goal.WeekStart); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}
