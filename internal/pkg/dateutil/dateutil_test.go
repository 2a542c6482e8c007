package dateutil_test

import (
	"testing"
	"time"

	"techdiet/internal/pkg/dateutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, time.March, 14, 23, 59, 58, 123, time.UTC)
	got := dateutil.StartOfDay(in)
	want := date(2025, time.March, 14)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
}

func TestStartOfWeek_mondayAnchor(t *testing.T) {
	// 2025-03-10 is a Monday.
	monday := date(2025, time.March, 10)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday.Add(15 * time.Hour)},
		{"wednesday", date(2025, time.March, 12)},
		{"saturday", date(2025, time.March, 15)},
		// Sunday is the LAST day of the week, so it still maps back to the
		// preceding Monday.
		{"sunday", date(2025, time.March, 16).Add(23 * time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dateutil.StartOfWeek(tc.in); !got.Equal(monday) {
				t.Fatalf("StartOfWeek(%v) = %v, want %v", tc.in, got, monday)
			}
		})
	}

	// The next Monday starts a new week.
	next := date(2025, time.March, 17)
	if got := dateutil.StartOfWeek(next.Add(time.Hour)); !got.Equal(next) {
		t.Fatalf("StartOfWeek(next monday) = %v, want %v", got, next)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.June, 1, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	if !dateutil.SameDay(a, b) {
		t.Fatal("expected same day")
	}
	if dateutil.SameDay(b, c) {
		t.Fatal("expected different days")
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from time.Time
		want int
	}{
		{"same instant", base, 0},
		{"six and a half days ago", base.Add(-156 * time.Hour), 6},
		{"exactly seven days ago", base.Add(-7 * 24 * time.Hour), 7},
		{"half a day in the future", base.Add(12 * time.Hour), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dateutil.DaysBetween(tc.from, base); got != tc.want {
				t.Fatalf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}
