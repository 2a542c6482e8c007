package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"techdiet/internal/domain/entity"
	"techdiet/internal/repository"
)

type CustomSourceRepo struct{ db repository.DBTX }

func NewCustomSourceRepo(db repository.DBTX) repository.CustomSourceRepository {
	return &CustomSourceRepo{db: db}
}

const sourceColumns = `id, name, media_type, frequency, publish_days, duration, topics, best_for, url`

// scanSource scans one custom_sources row. Rows from this table are custom
// by definition, so BuiltIn stays false.
func scanSource(rows *sql.Rows) (*entity.MediaSource, error) {
	var src entity.MediaSource
	var publishDaysJSON, topicsJSON, bestForJSON []byte
	if err := rows.Scan(
		&src.ID, &src.Name, &src.Type, &src.Frequency, &publishDaysJSON,
		&src.Duration, &topicsJSON, &bestForJSON, &src.URL,
	); err != nil {
		return nil, err
	}
	if err := unmarshalSourceLists(&src, publishDaysJSON, topicsJSON, bestForJSON); err != nil {
		return nil, err
	}
	return &src, nil
}

func unmarshalSourceLists(src *entity.MediaSource, publishDaysJSON, topicsJSON, bestForJSON []byte) error {
	if len(publishDaysJSON) > 0 {
		if err := json.Unmarshal(publishDaysJSON, &src.PublishDays); err != nil {
			return fmt.Errorf("unmarshal publish_days: %w", err)
		}
	}
	if len(topicsJSON) > 0 {
		if err := json.Unmarshal(topicsJSON, &src.Topics); err != nil {
			return fmt.Errorf("unmarshal topics: %w", err)
		}
	}
	if len(bestForJSON) > 0 {
		if err := json.Unmarshal(bestForJSON, &src.BestFor); err != nil {
			return fmt.Errorf("unmarshal best_for: %w", err)
		}
	}
	return nil
}

func (repo *CustomSourceRepo) List(ctx context.Context) ([]*entity.MediaSource, error) {
	const query = `
SELECT ` + sourceColumns + `
FROM custom_sources
ORDER BY created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sources := make([]*entity.MediaSource, 0, 20)
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

func (repo *CustomSourceRepo) Get(ctx context.Context, id string) (*entity.MediaSource, error) {
	const query = `
SELECT ` + sourceColumns + `
FROM custom_sources
WHERE id = $1
LIMIT 1`
	var src entity.MediaSource
	var publishDaysJSON, topicsJSON, bestForJSON []byte
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&src.ID, &src.Name, &src.Type, &src.Frequency, &publishDaysJSON,
		&src.Duration, &topicsJSON, &bestForJSON, &src.URL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if err := unmarshalSourceLists(&src, publishDaysJSON, topicsJSON, bestForJSON); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &src, nil
}

func (repo *CustomSourceRepo) Create(ctx context.Context, source *entity.MediaSource) error {
	const query = `
INSERT INTO custom_sources (id, name, media_type, frequency, publish_days, duration, topics, best_for, url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	publishDaysJSON, err := json.Marshal(source.PublishDays)
	if err != nil {
		return fmt.Errorf("Create: marshal publish_days: %w", err)
	}
	topicsJSON, err := json.Marshal(source.Topics)
	if err != nil {
		return fmt.Errorf("Create: marshal topics: %w", err)
	}
	bestForJSON, err := json.Marshal(source.BestFor)
	if err != nil {
		return fmt.Errorf("Create: marshal best_for: %w", err)
	}

	_, err = repo.db.ExecContext(ctx, query,
		source.ID, source.Name, source.Type, source.Frequency, publishDaysJSON,
		source.Duration, topicsJSON, bestForJSON, source.URL,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CustomSourceRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM custom_sources WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *CustomSourceRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM custom_sources`
	var count int
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
