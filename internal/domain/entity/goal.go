package entity

import (
	"time"

	"techdiet/internal/pkg/dateutil"
)

// DefaultWeeklyTarget is the number of entries per week the tracker aims for
// unless the user configures otherwise.
const DefaultWeeklyTarget = 3

// WeeklyGoal tracks progress against a weekly consumption target.
// WeekStart is always the Monday-aligned start of the tracked week.
// Current is a display value only; the authoritative progress count is always
// recomputed from the entry log.
type WeeklyGoal struct {
	Target    int
	Current   int
	WeekStart time.Time
}

// NewWeeklyGoal returns a fresh goal anchored to the week containing now.
func NewWeeklyGoal(target int, now time.Time) *WeeklyGoal {
	if target <= 0 {
		target = DefaultWeeklyTarget
	}
	return &WeeklyGoal{
		Target:    target,
		Current:   0,
		WeekStart: dateutil.StartOfWeek(now),
	}
}

// NeedsReset reports whether today falls in a later week than the tracked
// one. The comparison is strict, so calling a reset repeatedly within the
// same week is a no-op.
func (g *WeeklyGoal) NeedsReset(today time.Time) bool {
	return dateutil.StartOfWeek(today).After(g.WeekStart)
}

// Validate validates the goal fields.
func (g *WeeklyGoal) Validate() error {
	if g.Target <= 0 {
		return &ValidationError{Field: "target", Message: "must be positive"}
	}
	if g.WeekStart.IsZero() {
		return &ValidationError{Field: "weekStart", Message: "is required"}
	}
	if !g.WeekStart.Equal(dateutil.StartOfWeek(g.WeekStart)) {
		return &ValidationError{Field: "weekStart", Message: "must be Monday-aligned"}
	}
	return nil
}
