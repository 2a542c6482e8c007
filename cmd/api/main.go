package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"techdiet/internal/infra/adapter/persistence/postgres"
	builtinCatalog "techdiet/internal/infra/catalog"
	"techdiet/internal/infra/db"
	"techdiet/internal/observability/logging"
	"techdiet/internal/pkg/config"
	"techdiet/internal/resilience/circuitbreaker"

	catalogUC "techdiet/internal/usecase/catalog"
	entryUC "techdiet/internal/usecase/entrylog"
	goalUC "techdiet/internal/usecase/goal"
	recUC "techdiet/internal/usecase/recommend"
	streakUC "techdiet/internal/usecase/streak"

	hhttp "techdiet/internal/handler/http"
	hentry "techdiet/internal/handler/http/entry"
	hgoal "techdiet/internal/handler/http/goal"
	hinsights "techdiet/internal/handler/http/insights"
	"techdiet/internal/handler/http/requestid"
	hsrc "techdiet/internal/handler/http/source"
	"techdiet/internal/observability/tracing"
)

func main() {
	logger := initLogger()
	slog.SetDefault(logger)

	cfg, warnings := config.Load()
	for _, w := range warnings {
		logger.Warn("configuration fallback applied", slog.String("warning", w))
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, database, cfg, getVersion())
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler, cfg)
}

// initLogger picks the log format from LOG_FORMAT: "text" for local
// development, JSON otherwise.
func initLogger() *slog.Logger {
	if os.Getenv("LOG_FORMAT") == "text" {
		return logging.NewTextLogger()
	}
	return logging.NewLogger()
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, use cases, and routes into a single handler.
// Database access goes through a circuit breaker so a dying pool fails fast
// instead of piling up blocked requests.
func setupServer(logger *slog.Logger, database *sql.DB, cfg config.Config, version string) (http.Handler, error) {
	builtIn, err := builtinCatalog.BuiltIn()
	if err != nil {
		return nil, err
	}

	dbtx := circuitbreaker.NewDBCircuitBreaker(database)
	entries := postgres.NewEntryRepo(dbtx)
	customs := postgres.NewCustomSourceRepo(dbtx)
	goals := postgres.NewGoalRepo(dbtx)

	catalogSvc := &catalogUC.Service{BuiltIn: builtIn, Custom: customs}
	entrySvc := &entryUC.Service{Entries: entries, Catalog: catalogSvc}
	goalSvc := &goalUC.Service{Goals: goals, Entries: entries, DefaultTarget: cfg.WeeklyGoalTarget}
	streakSvc := &streakUC.Service{Entries: entries}
	recSvc := &recUC.Service{
		Entries:          entries,
		Catalog:          catalogSvc,
		Goal:             goalSvc,
		DailyEssentialID: cfg.DailyEssentialSource,
	}

	mux := http.NewServeMux()
	hentry.Register(mux, entrySvc)
	hsrc.Register(mux, catalogSvc)
	hgoal.Register(mux, goalSvc)
	hinsights.Register(mux, recSvc, streakSvc)

	mux.Handle("GET    /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /livez", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	rateLimiter := hhttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Outermost first: request id, then tracing so every span carries it,
	// then metrics and logging over the final status code.
	var handler http.Handler = mux
	handler = hhttp.LimitRequestBody(1 << 20)(handler)
	handler = rateLimiter.Limit(handler)
	handler = hhttp.Recover()(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.MetricsMiddleware(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)
	return handler, nil
}

// runServer serves until SIGINT/SIGTERM, then drains within the configured
// shutdown timeout.
func runServer(logger *slog.Logger, handler http.Handler, cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
