package recommend_test

import (
	"context"
	"testing"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/usecase/recommend"
)

type fixedEntries struct{ entries []*entity.ConsumptionEntry }

func (f *fixedEntries) List(_ context.Context) ([]*entity.ConsumptionEntry, error) {
	return f.entries, nil
}
func (f *fixedEntries) Get(_ context.Context, _ string) (*entity.ConsumptionEntry, error) {
	return nil, nil
}
func (f *fixedEntries) Create(_ context.Context, _ *entity.ConsumptionEntry) error { return nil }
func (f *fixedEntries) Update(_ context.Context, _ *entity.ConsumptionEntry) error { return nil }
func (f *fixedEntries) Delete(_ context.Context, _ string) error                   { return nil }
func (f *fixedEntries) CountSince(_ context.Context, _ time.Time) (int, error) {
	return len(f.entries), nil
}
func (f *fixedEntries) Count(_ context.Context) (int, error) { return len(f.entries), nil }

type fixedCatalog struct{ sources []*entity.MediaSource }

func (f *fixedCatalog) List(_ context.Context) ([]*entity.MediaSource, error) {
	return f.sources, nil
}

type fixedGoal struct {
	goal   entity.WeeklyGoal
	resets int
}

func (f *fixedGoal) ResetWeekIfNeeded(_ context.Context, _ time.Time) error {
	f.resets++
	return nil
}
func (f *fixedGoal) Get(_ context.Context, _ time.Time) (*entity.WeeklyGoal, error) {
	g := f.goal
	return &g, nil
}

func TestService_Daily(t *testing.T) {
	brief := source("tldr", entity.TypeNewsletter, []time.Weekday{time.Monday}, "5 min")
	goal := &fixedGoal{goal: entity.WeeklyGoal{Target: 3, WeekStart: testMonday}}
	svc := recommend.Service{
		Entries:          &fixedEntries{},
		Catalog:          &fixedCatalog{sources: []*entity.MediaSource{brief}},
		Goal:             goal,
		DailyEssentialID: "tldr",
	}

	recs, err := svc.Daily(context.Background(), testMonday)
	if err != nil {
		t.Fatalf("Daily err=%v", err)
	}
	if goal.resets != 1 {
		t.Fatal("Daily must roll the goal week forward first")
	}
	if len(recs) != 1 || recs[0].Source.ID != "tldr" {
		t.Fatalf("got %v", ids(recs))
	}
}
