package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker guards the shared Postgres pool. It implements
// repository.DBTX, so the repositories never know it is there; wiring in
// main decides whether queries go straight to the pool or through the
// breaker.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig trips only on sustained total failure: five consecutive errors
// open the circuit for 30 seconds. A flaky single query must not take the
// whole store offline.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker wraps db with the DBConfig breaker.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig wraps db with a custom breaker config.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(cfg), db: db}
}

// QueryContext runs the query through the breaker; with the circuit open it
// fails fast with gobreaker.ErrOpenState instead of queueing on a dead pool.
func (b *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := b.cb.Execute(func() (any, error) {
		return b.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return rows.(*sql.Rows), nil
}

// ExecContext runs the statement through the breaker.
func (b *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return res.(sql.Result), nil
}

// QueryRowContext bypasses the breaker: sql.Row surfaces its error only at
// Scan, after the breaker callback would already have returned.
func (b *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return b.db.QueryRowContext(ctx, query, args...)
}

// State reports the breaker state.
func (b *DBCircuitBreaker) State() gobreaker.State {
	return b.cb.State()
}

// IsOpen reports whether queries are currently being rejected.
func (b *DBCircuitBreaker) IsOpen() bool {
	return b.cb.IsOpen()
}
