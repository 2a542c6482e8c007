// Package db owns the Postgres connection: opening the pool from
// DATABASE_URL and migrating the schema. Both binaries call Open; only the
// API migrates.
package db

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"techdiet/internal/pkg/config"
)

// Pool defaults sized for one API plus one worker sharing the database.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 10
	defaultConnMaxLifetime = time.Hour
	defaultConnMaxIdleTime = 30 * time.Minute
)

// Open connects to DATABASE_URL, applies env-tunable pool limits, and
// verifies the connection with a short ping. A missing or unreachable
// database is fatal: nothing in either binary can run without it.
func Open() *sql.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		slog.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		slog.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	maxOpen := poolInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := poolInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	maxLifetime := poolDuration("DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime)
	maxIdleTime := poolDuration("DB_CONN_MAX_IDLE_TIME", defaultConnMaxIdleTime)

	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxIdle)
	pool.SetConnMaxLifetime(maxLifetime)
	pool.SetConnMaxIdleTime(maxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", maxOpen),
		slog.Int("max_idle_conns", maxIdle),
		slog.Duration("conn_max_lifetime", maxLifetime),
		slog.Duration("conn_max_idle_time", maxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		slog.Error("failed to ping database", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("database connection established")
	return pool
}

// poolInt reads an integer pool limit, logging and falling back on bad
// values instead of refusing to start.
func poolInt(key string, def int) int {
	r := config.LoadEnvInt(key, def, func(v int) error {
		return config.ValidateIntRange(v, 1, 10000)
	})
	for _, w := range r.Warnings {
		slog.Warn("pool setting fallback", slog.String("warning", w))
	}
	return r.Value.(int)
}

func poolDuration(key string, def time.Duration) time.Duration {
	r := config.LoadEnvDuration(key, def, config.ValidatePositiveDuration)
	for _, w := range r.Warnings {
		slog.Warn("pool setting fallback", slog.String("warning", w))
	}
	return r.Value.(time.Duration)
}
