// Package recommend implements the daily recommendation engine: a pure
// ranking function over the entry log and the source catalog, plus a service
// facade that feeds it live state.
package recommend

import (
	"sort"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/pkg/dateutil"
)

// Ranking constants.
const (
	// MaxRecommendations caps the list shown for "today".
	MaxRecommendations = 3
	// trailingWindowDays is the rolling consumed-recently window. It is
	// deliberately distinct from the Monday-aligned goal week.
	trailingWindowDays = 7
	// quickContentMaxMinutes bounds what counts as quick weekend catch-up.
	quickContentMaxMinutes = 10
	// unheardPodcastLimit bounds how many unheard podcasts are suggested.
	unheardPodcastLimit = 2
)

// Recommendation reasons, surfaced verbatim to the caller.
const (
	ReasonPublishedToday = "New episode/issue published today!"
	ReasonQuickCatchUp   = "Quick read to meet your weekly goal"
	ReasonUnheardPodcast = "You haven't listened to this yet this week"
	ReasonDailyBrief     = "Daily tech news brief"
)

// Recommendation pairs a source with the reason it surfaced and its priority
// rank. Lower priority numbers are more urgent.
type Recommendation struct {
	Source   *entity.MediaSource
	Reason   string
	Priority int
}

// Input is the full state the engine ranks over. The engine itself performs
// no I/O and no clock reads; for a fixed Input it is deterministic.
type Input struct {
	Entries []*entity.ConsumptionEntry
	Sources []*entity.MediaSource
	Today   time.Time
	// WeekProgress and Target come from the goal tracker and gate the
	// weekend catch-up pass.
	WeekProgress int
	Target       int
	// DailyEssentialID names the always-consider daily brief source.
	// Empty disables that pass.
	DailyEssentialID string
}

// Daily produces at most MaxRecommendations suggestions for today, ordered by
// ascending priority with ties kept in pass order. An empty result means the
// user is all caught up, not an error.
func Daily(in Input) []Recommendation {
	weekday := in.Today.Weekday()
	consumed := consumedSourceIDs(in.Entries, in.Today)

	var recs []Recommendation
	seen := make(map[string]bool)
	add := func(src *entity.MediaSource, reason string, priority int) {
		if seen[src.ID] {
			return
		}
		seen[src.ID] = true
		recs = append(recs, Recommendation{Source: src, Reason: reason, Priority: priority})
	}

	// Priority 1: sources scheduled to publish today, not consumed this week.
	for _, src := range in.Sources {
		if src.PublishesOn(weekday) && !consumed[src.ID] {
			add(src, ReasonPublishedToday, 1)
		}
	}

	// Priority 2: weekend catch-up with quick content, only when behind on
	// the weekly goal.
	if in.WeekProgress < in.Target && (weekday == time.Saturday || weekday == time.Sunday) {
		for _, src := range in.Sources {
			minutes, ok := src.DurationMinutes()
			if ok && minutes <= quickContentMaxMinutes && !consumed[src.ID] {
				add(src, ReasonQuickCatchUp, 2)
			}
		}
	}

	// Priority 3: the first couple of podcasts not heard this week.
	podcasts := 0
	for _, src := range in.Sources {
		if podcasts == unheardPodcastLimit {
			break
		}
		if src.Type == entity.TypePodcast && !consumed[src.ID] {
			podcasts++
			add(src, ReasonUnheardPodcast, 3)
		}
	}

	// Always consider the daily brief unless it was logged today. This is a
	// same-calendar-day check, not the trailing-week window: yesterday's
	// read does not cover today's issue.
	if in.DailyEssentialID != "" && !loggedOn(in.Entries, in.DailyEssentialID, in.Today) {
		for _, src := range in.Sources {
			if src.ID == in.DailyEssentialID {
				add(src, ReasonDailyBrief, 1)
				break
			}
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// consumedSourceIDs collects the source ids of entries logged within the
// trailing window: strictly fewer than trailingWindowDays whole days old.
func consumedSourceIDs(entries []*entity.ConsumptionEntry, today time.Time) map[string]bool {
	consumed := make(map[string]bool)
	for _, e := range entries {
		if age := dateutil.DaysBetween(e.Date, today); age < trailingWindowDays {
			consumed[e.SourceID] = true
		}
	}
	return consumed
}

// loggedOn reports whether any entry for the source carries today's exact
// calendar date.
func loggedOn(entries []*entity.ConsumptionEntry, sourceID string, day time.Time) bool {
	for _, e := range entries {
		if e.SourceID == sourceID && dateutil.SameDay(e.Date, day) {
			return true
		}
	}
	return false
}
