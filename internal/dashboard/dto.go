package dashboard

import (
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	"github.com/lucasmoraes-dev/habitflow/internal/user"
)

type Stats struct {
	TotalHabits    int64 `json:"totalHabits"`
	ActiveHabits   int64 `json:"activeHabits"`
	CompletedToday int64 `json:"completedToday"`
	WeeklyProgress int   `json:"weeklyProgress"`
}

// DailyProgress is one point of the 7-entry chart series. Total repeats the
// active habit count so the chart can scale each bar.
type DailyProgress struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int64  `json:"total"`
}

type CategoryStat struct {
	Category habit.Category `json:"category"`
	Count    int64          `json:"count"`
}

type DashboardResponse struct {
	User          *user.UserResponse `json:"user"`
	Stats         Stats              `json:"stats"`
	DailyProgress []DailyProgress    `json:"dailyProgress"`
	CategoryStats []CategoryStat     `json:"categoryStats"`
	RecentHabits  []*habit.Habit     `json:"recentHabits"`
}
