package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/repository"
)

type EntryRepo struct{ db repository.DBTX }

func NewEntryRepo(db repository.DBTX) repository.EntryRepository {
	return &EntryRepo{db: db}
}

const entryColumns = `id, source_id, source_name, media_type, topics, title, logged_at, key_insight, interview_angle`

// scanEntry scans one entries row including the JSONB topics column.
func scanEntry(rows *sql.Rows) (*entity.ConsumptionEntry, error) {
	var e entity.ConsumptionEntry
	var topicsJSON []byte
	if err := rows.Scan(
		&e.ID, &e.SourceID, &e.SourceName, &e.Type, &topicsJSON,
		&e.Title, &e.Date, &e.KeyInsight, &e.InterviewAngle,
	); err != nil {
		return nil, err
	}

	if len(topicsJSON) > 0 {
		if err := json.Unmarshal(topicsJSON, &e.Topics); err != nil {
			return nil, fmt.Errorf("unmarshal topics: %w", err)
		}
	}

	return &e, nil
}

func (repo *EntryRepo) List(ctx context.Context) ([]*entity.ConsumptionEntry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM entries
ORDER BY seq ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*entity.ConsumptionEntry, 0, 50)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (repo *EntryRepo) Get(ctx context.Context, id string) (*entity.ConsumptionEntry, error) {
	const query = `
SELECT ` + entryColumns + `
FROM entries
WHERE id = $1
LIMIT 1`
	var e entity.ConsumptionEntry
	var topicsJSON []byte
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.SourceID, &e.SourceName, &e.Type, &topicsJSON,
		&e.Title, &e.Date, &e.KeyInsight, &e.InterviewAngle,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	if len(topicsJSON) > 0 {
		if err := json.Unmarshal(topicsJSON, &e.Topics); err != nil {
			return nil, fmt.Errorf("Get: unmarshal topics: %w", err)
		}
	}

	return &e, nil
}

func (repo *EntryRepo) Create(ctx context.Context, entry *entity.ConsumptionEntry) error {
	const query = `
INSERT INTO entries (id, source_id, source_name, media_type, topics, title, logged_at, key_insight, interview_angle)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	topicsJSON, err := json.Marshal(entry.Topics)
	if err != nil {
		return fmt.Errorf("Create: marshal topics: %w", err)
	}

	_, err = repo.db.ExecContext(ctx, query,
		entry.ID, entry.SourceID, entry.SourceName, entry.Type, topicsJSON,
		entry.Title, entry.Date, entry.KeyInsight, entry.InterviewAngle,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *EntryRepo) Update(ctx context.Context, entry *entity.ConsumptionEntry) error {
	const query = `
UPDATE entries
SET source_id = $2, source_name = $3, media_type = $4, topics = $5,
    title = $6, logged_at = $7, key_insight = $8, interview_angle = $9
WHERE id = $1`
	topicsJSON, err := json.Marshal(entry.Topics)
	if err != nil {
		return fmt.Errorf("Update: marshal topics: %w", err)
	}

	res, err := repo.db.ExecContext(ctx, query,
		entry.ID, entry.SourceID, entry.SourceName, entry.Type, topicsJSON,
		entry.Title, entry.Date, entry.KeyInsight, entry.InterviewAngle,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *EntryRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM entries WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *EntryRepo) CountSince(ctx context.Context, t time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM entries WHERE logged_at >= $1`
	var count int
	if err := repo.db.QueryRowContext(ctx, query, t).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountSince: %w", err)
	}
	return count, nil
}

func (repo *EntryRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM entries`
	var count int
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
