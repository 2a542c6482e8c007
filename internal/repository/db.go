package repository

import (
	"context"
	"database/sql"
)

// DBTX is the narrow querier surface the SQL adapters need. Both *sql.DB and
// the circuit-breaker wrapper in internal/resilience/circuitbreaker satisfy
// it, so protection can be added at wiring time without touching the repos.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
