package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordEntryLogged(t *testing.T) {
	before := testutil.ToFloat64(EntriesLoggedTotal.WithLabelValues("podcast"))
	RecordEntryLogged("podcast")
	after := testutil.ToFloat64(EntriesLoggedTotal.WithLabelValues("podcast"))
	if after != before+1 {
		t.Fatalf("counter = %v, want %v", after, before+1)
	}
}

func TestRecordRecommendationServed_labels(t *testing.T) {
	RecordRecommendationServed(1)
	RecordRecommendationServed(3)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather err=%v", err)
	}

	var family *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "techdiet_recommendations_served_total" {
			family = f
			break
		}
	}
	if family == nil {
		t.Fatal("recommendations counter not registered")
	}

	labels := make(map[string]bool)
	for _, m := range family.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "priority" {
				labels[l.GetValue()] = true
			}
		}
	}
	if !labels["1"] || !labels["3"] {
		t.Fatalf("want priority labels 1 and 3, got %v", labels)
	}
}

func TestGauges(t *testing.T) {
	UpdateWeeklyProgress(2)
	if got := testutil.ToFloat64(WeeklyProgress); got != 2 {
		t.Fatalf("weekly progress = %v, want 2", got)
	}

	UpdateCurrentStreak(5)
	if got := testutil.ToFloat64(CurrentStreakDays); got != 5 {
		t.Fatalf("current streak = %v, want 5", got)
	}

	UpdateEntriesTotal(10)
	UpdateSourcesTotal(9)
	if testutil.ToFloat64(EntriesTotal) != 10 || testutil.ToFloat64(SourcesTotal) != 9 {
		t.Fatal("totals gauges not updated")
	}
}
