package metrics

import "strconv"

// RecordEntryLogged records a newly logged consumption entry.
func RecordEntryLogged(mediaType string) {
	EntriesLoggedTotal.WithLabelValues(mediaType).Inc()
}

// RecordEntryDeleted records a deleted consumption entry.
func RecordEntryDeleted() {
	EntriesDeletedTotal.Inc()
}

// RecordRecommendationServed records one served recommendation at the given
// priority rank.
func RecordRecommendationServed(priority int) {
	RecommendationsServedTotal.WithLabelValues(strconv.Itoa(priority)).Inc()
}

// RecordWeekReset records a weekly goal rollover.
func RecordWeekReset() {
	WeekResetsTotal.Inc()
}

// UpdateWeeklyProgress updates the current week progress gauge.
func UpdateWeeklyProgress(count int) {
	WeeklyProgress.Set(float64(count))
}

// UpdateCurrentStreak updates the current streak gauge.
func UpdateCurrentStreak(days int) {
	CurrentStreakDays.Set(float64(days))
}

// UpdateEntriesTotal updates the total log size gauge.
// This gauge should be updated periodically to reflect the current state.
func UpdateEntriesTotal(count int) {
	EntriesTotal.Set(float64(count))
}

// UpdateSourcesTotal updates the catalog size gauge.
// This gauge should be updated periodically to reflect the current state.
func UpdateSourcesTotal(count int) {
	SourcesTotal.Set(float64(count))
}
