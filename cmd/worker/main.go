package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	"techdiet/internal/infra/adapter/persistence/postgres"
	builtinCatalog "techdiet/internal/infra/catalog"
	"techdiet/internal/infra/db"
	"techdiet/internal/observability/logging"
	"techdiet/internal/observability/metrics"
	"techdiet/internal/pkg/config"
	"techdiet/internal/resilience/circuitbreaker"

	hhttp "techdiet/internal/handler/http"
	goalUC "techdiet/internal/usecase/goal"
	streakUC "techdiet/internal/usecase/streak"
)

// The worker owns the scheduled maintenance the API never blocks on: rolling
// the goal week forward just after midnight and refreshing the slow-moving
// gauges. All of it is idempotent, so overlapping or missed runs are safe.
func main() {
	logger := initLogger()
	slog.SetDefault(logger)

	cfg, warnings := config.Load()
	for _, w := range warnings {
		logger.Warn("configuration fallback applied", slog.String("warning", w))
	}

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	maint, err := newMaintenance(database, cfg)
	if err != nil {
		logger.Error("failed to initialize worker", slog.Any("error", err))
		os.Exit(1)
	}

	loc := cfg.Location()
	scheduler := cron.New(cron.WithLocation(loc))
	if _, err := scheduler.AddFunc(cfg.CronSchedule, func() {
		maint.run(ctx, logger)
	}); err != nil {
		logger.Error("invalid cron schedule", slog.Any("error", err))
		os.Exit(1)
	}

	// One pass at startup so gauges are never stale for a whole day.
	maint.run(ctx, logger)

	scheduler.Start()
	logger.Info("worker started",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	startOpsServer(ctx, logger, database)

	<-ctx.Done()
	logger.Info("shutting down worker...")

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(cfg.ShutdownTimeout):
		logger.Warn("cron jobs did not finish before shutdown timeout")
	}
	logger.Info("worker stopped")
}

// initLogger picks the log format from LOG_FORMAT: "text" for local
// development, JSON otherwise.
func initLogger() *slog.Logger {
	if os.Getenv("LOG_FORMAT") == "text" {
		return logging.NewTextLogger()
	}
	return logging.NewLogger()
}

// waitForMigrations blocks until the API has created the schema. The worker
// and API share one database but only the API migrates.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const check = "SELECT 1 FROM entries LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(check); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// counter is the slice of the repositories the gauge refresh needs.
type counter interface {
	Count(ctx context.Context) (int, error)
}

type maintenance struct {
	goal         *goalUC.Service
	streaks      *streakUC.Service
	entries      counter
	customs      counter
	builtInCount int
}

func newMaintenance(database *sql.DB, cfg config.Config) (*maintenance, error) {
	builtIn, err := builtinCatalog.BuiltIn()
	if err != nil {
		return nil, err
	}

	dbtx := circuitbreaker.NewDBCircuitBreaker(database)
	entries := postgres.NewEntryRepo(dbtx)
	customs := postgres.NewCustomSourceRepo(dbtx)
	goals := postgres.NewGoalRepo(dbtx)

	return &maintenance{
		goal:         &goalUC.Service{Goals: goals, Entries: entries, DefaultTarget: cfg.WeeklyGoalTarget},
		streaks:      &streakUC.Service{Entries: entries},
		entries:      entries,
		customs:      customs,
		builtInCount: len(builtIn),
	}, nil
}

// run executes one maintenance pass. Failures are logged and skipped; the
// next scheduled run retries.
func (m *maintenance) run(ctx context.Context, logger *slog.Logger) {
	now := time.Now()

	if err := m.goal.ResetWeekIfNeeded(ctx, now); err != nil {
		logger.Error("weekly goal rollover failed", slog.Any("error", err))
	}
	if _, err := m.goal.WeekProgress(ctx, now); err != nil {
		logger.Error("weekly progress refresh failed", slog.Any("error", err))
	}
	if _, err := m.streaks.Stats(ctx, now); err != nil {
		logger.Error("streak refresh failed", slog.Any("error", err))
	}

	if count, err := m.entries.Count(ctx); err != nil {
		logger.Error("entry count refresh failed", slog.Any("error", err))
	} else {
		metrics.UpdateEntriesTotal(count)
	}
	if count, err := m.customs.Count(ctx); err != nil {
		logger.Error("source count refresh failed", slog.Any("error", err))
	} else {
		metrics.UpdateSourcesTotal(m.builtInCount + count)
	}

	logger.Info("maintenance pass completed", slog.Duration("took", time.Since(now)))
}

// startOpsServer exposes health and metrics endpoints for the worker process.
func startOpsServer(ctx context.Context, logger *slog.Logger, database *sql.DB) {
	addr := config.LoadEnvString("WORKER_HTTP_ADDR", ":8081")

	mux := http.NewServeMux()
	mux.Handle("GET    /healthz", &hhttp.HealthHandler{DB: database, Version: os.Getenv("VERSION")})
	mux.Handle("GET    /livez", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("worker ops server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker ops server failed", slog.Any("error", err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
