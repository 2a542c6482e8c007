// Package streak derives consumption streaks and a 7-day activity histogram
// from the entry log. Everything here is recomputed fresh on each call; there
// is no cached state to fall out of sync.
package streak

import (
	"sort"
	"time"

	"techdiet/internal/domain/entity"
	"techdiet/internal/pkg/dateutil"
)

// historyDays is the span of the activity histogram, today included.
const historyDays = 7

// DayActivity is one bar of the activity histogram.
type DayActivity struct {
	Day     time.Time
	Count   int
	IsToday bool
}

// Stats summarizes consumption consistency.
type Stats struct {
	CurrentStreak int
	LongestStreak int
	TotalEntries  int
	// LastEntryDate is nil when the log is empty.
	LastEntryDate *time.Time
	// WeeklyActivity covers the last historyDays calendar days, oldest first.
	WeeklyActivity []DayActivity
}

// Calculate derives streak stats from the log as of today.
func Calculate(entries []*entity.ConsumptionEntry, today time.Time) Stats {
	stats := Stats{
		TotalEntries:   len(entries),
		WeeklyActivity: weeklyActivity(entries, today),
	}
	if len(entries) == 0 {
		return stats
	}

	perDay := make(map[time.Time]int)
	var last time.Time
	for _, e := range entries {
		perDay[dateutil.StartOfDay(e.Date)]++
		if e.Date.After(last) {
			last = e.Date
		}
	}
	stats.LastEntryDate = &last
	stats.CurrentStreak = currentStreak(perDay, today)
	stats.LongestStreak = longestStreak(perDay)
	return stats
}

// currentStreak walks backward from today. A day without entries only breaks
// the streak once both today and yesterday are empty: an entry logged
// yesterday still anchors a live streak this morning.
func currentStreak(perDay map[time.Time]int, today time.Time) int {
	anchor := dateutil.StartOfDay(today)
	if perDay[anchor] == 0 {
		anchor = anchor.AddDate(0, 0, -1) // yesterday
		if perDay[anchor] == 0 {
			return 0
		}
	}

	streak := 0
	for day := anchor; perDay[day] > 0; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// longestStreak scans the unique populated days in ascending order. A gap of
// exactly one day extends the run; any other gap closes it.
func longestStreak(perDay map[time.Time]int) int {
	days := make([]time.Time, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, day := range days {
		if i > 0 && dateutil.DaysBetween(days[i-1], day) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// weeklyActivity counts entries per calendar day for the trailing histogram,
// oldest to newest with today last.
func weeklyActivity(entries []*entity.ConsumptionEntry, today time.Time) []DayActivity {
	perDay := make(map[time.Time]int)
	for _, e := range entries {
		perDay[dateutil.StartOfDay(e.Date)]++
	}

	activity := make([]DayActivity, 0, historyDays)
	start := dateutil.StartOfDay(today)
	for i := historyDays - 1; i >= 0; i-- {
		day := start.AddDate(0, 0, -i)
		activity = append(activity, DayActivity{
			Day:     day,
			Count:   perDay[day],
			IsToday: i == 0,
		})
	}
	return activity
}
