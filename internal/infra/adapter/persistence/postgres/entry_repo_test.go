package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techdiet/internal/domain/entity"
)

var loggedAt = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newEntryRepo(t *testing.T) (*EntryRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return &EntryRepo{db: db}, mock, func() { _ = db.Close() }
}

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "source_id", "source_name", "media_type", "topics",
		"title", "logged_at", "key_insight", "interview_angle",
	})
}

func TestEntryRepo_List(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	rows := entryRows().
		AddRow("e1", "hard-fork", "Hard Fork", "podcast", []byte(`["AI","Big Tech"]`),
			"Ep 42", loggedAt, "insight one", "").
		AddRow("e2", "tldr", "TLDR", "newsletter", []byte(`[]`),
			"Daily brief", loggedAt.Add(time.Hour), "insight two", "angle")
	mock.ExpectQuery("SELECT (.+) FROM entries ORDER BY seq ASC").WillReturnRows(rows)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, []string{"AI", "Big Tech"}, entries[0].Topics)
	assert.Equal(t, entity.TypePodcast, entries[0].Type)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Equal(t, "angle", entries[1].InterviewAngle)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_List_QueryError(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM entries").WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestEntryRepo_Get(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	rows := entryRows().
		AddRow("e1", "hard-fork", "Hard Fork", "podcast", []byte(`["AI"]`),
			"Ep 42", loggedAt, "insight", "")
	mock.ExpectQuery("SELECT (.+) FROM entries WHERE id =").
		WithArgs("e1").
		WillReturnRows(rows)

	e, err := repo.Get(context.Background(), "e1")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Hard Fork", e.SourceName)
	assert.True(t, e.Date.Equal(loggedAt))
}

func TestEntryRepo_Get_NotFound(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM entries WHERE id =").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	e, err := repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, e, "absent entry must be (nil, nil)")
}

func TestEntryRepo_Create(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectExec("INSERT INTO entries").
		WithArgs("e1", "hard-fork", "Hard Fork", "podcast", []byte(`["AI"]`),
			"Ep 42", loggedAt, "insight", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &entity.ConsumptionEntry{
		ID: "e1", SourceID: "hard-fork", SourceName: "Hard Fork",
		Type: entity.TypePodcast, Topics: []string{"AI"},
		Title: "Ep 42", Date: loggedAt, KeyInsight: "insight",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_Update(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectExec("UPDATE entries").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &entity.ConsumptionEntry{
		ID: "e1", SourceID: "hard-fork", SourceName: "Hard Fork",
		Type: entity.TypePodcast, Title: "Ep 42 updated", Date: loggedAt,
		KeyInsight: "revised",
	})
	assert.NoError(t, err)
}

func TestEntryRepo_Update_NotFound(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectExec("UPDATE entries").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.ConsumptionEntry{
		ID: "missing", SourceID: "s", SourceName: "s",
		Type: entity.TypePodcast, Title: "t", Date: loggedAt, KeyInsight: "k",
	})
	assert.True(t, errors.Is(err, entity.ErrNotFound), "got %v", err)
}

func TestEntryRepo_Delete(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectExec("DELETE FROM entries").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "e1"))
}

func TestEntryRepo_Delete_AbsentIsNoError(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectExec("DELETE FROM entries").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "missing"))
}

func TestEntryRepo_CountSince(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entries WHERE logged_at >=`).
		WithArgs(loggedAt).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountSince(context.Background(), loggedAt)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestEntryRepo_Count(t *testing.T) {
	repo, mock, done := newEntryRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entries`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}
