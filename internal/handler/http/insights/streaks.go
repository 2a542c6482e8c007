package insights

import (
	"net/http"
	"time"

	"techdiet/internal/handler/http/respond"
	streakUC "techdiet/internal/usecase/streak"
)

type DayActivityDTO struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Count   int    `json:"count"`
	IsToday bool   `json:"is_today"`
}

type StreaksDTO struct {
	CurrentStreak  int              `json:"current_streak"`
	LongestStreak  int              `json:"longest_streak"`
	TotalEntries   int              `json:"total_entries"`
	LastEntryDate  *string          `json:"last_entry_date"` // YYYY-MM-DD, null when the log is empty
	WeeklyActivity []DayActivityDTO `json:"weekly_activity"`
}

type StreaksHandler struct{ Svc *streakUC.Service }

func (h StreaksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context(), time.Now())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	var lastEntry *string
	if stats.LastEntryDate != nil {
		s := stats.LastEntryDate.Format("2006-01-02")
		lastEntry = &s
	}
	activity := make([]DayActivityDTO, 0, len(stats.WeeklyActivity))
	for _, day := range stats.WeeklyActivity {
		activity = append(activity, DayActivityDTO{
			Day:     day.Day.Format("2006-01-02"),
			Count:   day.Count,
			IsToday: day.IsToday,
		})
	}

	respond.JSON(w, http.StatusOK, StreaksDTO{
		CurrentStreak:  stats.CurrentStreak,
		LongestStreak:  stats.LongestStreak,
		TotalEntries:   stats.TotalEntries,
		LastEntryDate:  lastEntry,
		WeeklyActivity: activity,
	})
}
