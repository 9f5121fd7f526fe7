package dashboard

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lucasmoraes-dev/habitflow/internal/auth"
	"github.com/lucasmoraes-dev/habitflow/internal/config"
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	"github.com/lucasmoraes-dev/habitflow/internal/user"
	util "github.com/lucasmoraes-dev/habitflow/internal/utils"
)

const (
	seriesDays       = 7
	recentHabitLimit = 5
)

var ErrUnauthorized = errors.New("unauthorized")

type Service interface {
	Get(ctx context.Context) (*DashboardResponse, error)
}

type service struct {
	repo      Repository
	habitRepo habit.HabitRepository
	users     user.Service
}

func NewService(repo Repository, habitRepo habit.HabitRepository, users user.Service) Service {
	return &service{
		repo:      repo,
		habitRepo: habitRepo,
		users:     users,
	}
}

func (s *service) Get(ctx context.Context) (*DashboardResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	caller, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		log.WithError(err).Error("Failed to load dashboard user")
		return nil, err
	}

	today := util.StartOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)
	weekAgo := today.AddDate(0, 0, -(seriesDays - 1))

	totalHabits, err := s.repo.CountHabits(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count habits")
		return nil, err
	}
	activeHabits, err := s.repo.CountActiveHabits(userID)
	if err != nil {
		log.WithError(err).Error("Failed to count active habits")
		return nil, err
	}
	completedToday, err := s.repo.CountLogsBetween(userID, today, tomorrow)
	if err != nil {
		log.WithError(err).Error("Failed to count today's logs")
		return nil, err
	}
	weeklyLogs, err := s.repo.CountLogsSince(userID, weekAgo)
	if err != nil {
		log.WithError(err).Error("Failed to count weekly logs")
		return nil, err
	}

	logDates, err := s.repo.LogDatesSince(userID, weekAgo)
	if err != nil {
		log.WithError(err).Error("Failed to load weekly log dates")
		return nil, err
	}

	categoryStats, err := s.repo.CategoryCounts(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load category stats")
		return nil, err
	}
	if categoryStats == nil {
		categoryStats = []CategoryStat{}
	}

	recent, err := s.habitRepo.ListActiveWithLogs(userID, weekAgo, recentHabitLimit)
	if err != nil {
		log.WithError(err).Error("Failed to load recent habits")
		return nil, err
	}
	if recent == nil {
		recent = []*habit.Habit{}
	}

	return &DashboardResponse{
		User: caller,
		Stats: Stats{
			TotalHabits:    totalHabits,
			ActiveHabits:   activeHabits,
			CompletedToday: completedToday,
			WeeklyProgress: WeeklyCompletionRate(weeklyLogs, activeHabits),
		},
		DailyProgress: BuildDailyProgress(today, activeHabits, logDates),
		CategoryStats: categoryStats,
		RecentHabits:  recent,
	}, nil
}

// WeeklyCompletionRate is round(100 * logs / (activeHabits * 7)); zero active
// habits means a rate of 0 rather than a division by zero.
func WeeklyCompletionRate(weeklyLogs, activeHabits int64) int {
	if activeHabits <= 0 {
		return 0
	}
	return int(math.Round(float64(weeklyLogs) * 100 / float64(activeHabits*seriesDays)))
}

// BuildDailyProgress produces exactly seven entries, oldest to newest, one
// per calendar day ending at today. Days without logs stay at zero: the chart
// relies on a gap-free, fixed-length series, never on however many distinct
// log dates exist.
func BuildDailyProgress(today time.Time, activeHabits int64, logDates []time.Time) []DailyProgress {
	today = util.StartOfDay(today)

	series := make([]DailyProgress, 0, seriesDays)
	index := make(map[string]int, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		day := util.DayString(today.AddDate(0, 0, -i))
		index[day] = len(series)
		series = append(series, DailyProgress{
			Date:  day,
			Total: activeHabits,
		})
	}

	for _, d := range logDates {
		if pos, ok := index[util.DayString(d)]; ok {
			series[pos].Completed++
		}
	}
	return series
}
