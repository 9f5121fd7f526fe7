package dashboard_test

import (
	"testing"
	"time"

	"github.com/lucasmoraes-dev/habitflow/internal/dashboard"
)

func TestWeeklyCompletionRate(t *testing.T) {
	cases := []struct {
		name         string
		weeklyLogs   int64
		activeHabits int64
		want         int
	}{
		{"NoActiveHabits", 10, 0, 0},
		{"NoLogs", 0, 3, 0},
		{"TwoHabitsTenLogs", 10, 2, 71}, // round(100*10/14)
		{"FullWeek", 14, 2, 100},
		{"RoundsHalfUp", 7, 2, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dashboard.WeeklyCompletionRate(tc.weeklyLogs, tc.activeHabits)
			if got != tc.want {
				t.Errorf("WeeklyCompletionRate(%d, %d) = %d, want %d", tc.weeklyLogs, tc.activeHabits, got, tc.want)
			}
		})
	}
}

func TestBuildDailyProgress(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

	t.Run("AlwaysSevenOrderedEntries", func(t *testing.T) {
		series := dashboard.BuildDailyProgress(today, 2, nil)

		if len(series) != 7 {
			t.Fatalf("Expected 7 entries, got %d", len(series))
		}
		if series[0].Date != "2025-03-04" || series[6].Date != "2025-03-10" {
			t.Errorf("Wrong window: %s .. %s", series[0].Date, series[6].Date)
		}
		for i := 1; i < len(series); i++ {
			if series[i].Date <= series[i-1].Date {
				t.Errorf("Series not ascending at %d: %s <= %s", i, series[i].Date, series[i-1].Date)
			}
		}
		for _, p := range series {
			if p.Completed != 0 {
				t.Errorf("Day %s should be zero without logs, got %d", p.Date, p.Completed)
			}
			if p.Total != 2 {
				t.Errorf("Day %s should carry the active habit total, got %d", p.Date, p.Total)
			}
		}
	})

	t.Run("CountsLogsPerDay", func(t *testing.T) {
		logs := []time.Time{
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		}
		series := dashboard.BuildDailyProgress(today, 3, logs)

		byDate := map[string]int{}
		for _, p := range series {
			byDate[p.Date] = p.Completed
		}
		if byDate["2025-03-10"] != 2 {
			t.Errorf("Expected 2 logs on 2025-03-10, got %d", byDate["2025-03-10"])
		}
		if byDate["2025-03-08"] != 1 {
			t.Errorf("Expected 1 log on 2025-03-08, got %d", byDate["2025-03-08"])
		}
		if byDate["2025-03-09"] != 0 {
			t.Errorf("Expected gap day to stay zero, got %d", byDate["2025-03-09"])
		}
	})

	t.Run("IgnoresLogsOutsideWindow", func(t *testing.T) {
		logs := []time.Time{
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		}
		series := dashboard.BuildDailyProgress(today, 1, logs)
		for _, p := range series {
			if p.Completed != 0 {
				t.Errorf("Out-of-window log counted on %s", p.Date)
			}
		}
	})
}
