// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track the tracker's domain activity
var (
	// EntriesLoggedTotal counts logged consumption entries by media type
	EntriesLoggedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techdiet_entries_logged_total",
			Help: "Total number of consumption entries logged",
		},
		[]string{"type"},
	)

	// EntriesDeletedTotal counts deleted consumption entries
	EntriesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "techdiet_entries_deleted_total",
			Help: "Total number of consumption entries deleted",
		},
	)

	// RecommendationsServedTotal counts served recommendations by priority
	RecommendationsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techdiet_recommendations_served_total",
			Help: "Total number of daily recommendations served",
		},
		[]string{"priority"},
	)

	// WeekResetsTotal counts weekly goal rollovers
	WeekResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "techdiet_week_resets_total",
			Help: "Total number of weekly goal window rollovers",
		},
	)

	// WeeklyProgress reflects the current count of entries in the goal week
	WeeklyProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "techdiet_weekly_progress",
			Help: "Entries logged within the current Monday-aligned week",
		},
	)

	// CurrentStreakDays reflects the current consecutive-day streak
	CurrentStreakDays = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "techdiet_current_streak_days",
			Help: "Current consecutive-day consumption streak",
		},
	)

	// EntriesTotal reflects the total size of the consumption log
	EntriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "techdiet_entries_total",
			Help: "Total number of entries in the consumption log",
		},
	)

	// SourcesTotal reflects the catalog size (built-in plus custom)
	SourcesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "techdiet_sources_total",
			Help: "Total number of sources in the combined catalog",
		},
	)
)
