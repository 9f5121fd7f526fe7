package aitip

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lucasmoraes-dev/habitflow/internal/auth"
	"github.com/lucasmoraes-dev/habitflow/internal/config"
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	util "github.com/lucasmoraes-dev/habitflow/internal/utils"
)

const summaryDays = 7

const onboardingTip = "Welcome to your health journey! Start by creating your first habit to track. Consider beginning with simple habits like drinking 8 glasses of water daily or taking a 10-minute walk."

var ErrUnauthorized = errors.New("unauthorized")

var categoryDisplay = map[string]string{
	"health":       "Health",
	"fitness":      "Fitness",
	"nutrition":    "Nutrition",
	"sleep":        "Sleep",
	"mindfulness":  "Mindfulness",
	"productivity": "Productivity",
	"social":       "Social",
	"other":        "General",
}

type Service interface {
	GenerateTip(ctx context.Context) (*TipResponse, error)
}

type service struct {
	provider  Provider
	habitRepo habit.HabitRepository
}

func NewService(provider Provider, habitRepo habit.HabitRepository) Service {
	return &service{
		provider:  provider,
		habitRepo: habitRepo,
	}
}

func (s *service) GenerateTip(ctx context.Context) (*TipResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	weekAgo := util.StartOfDay(time.Now()).AddDate(0, 0, -(summaryDays - 1))
	habits, err := s.habitRepo.ListActiveWithLogs(userID, weekAgo, 0)
	if err != nil {
		log.WithError(err).Error("Failed to load habits for tip generation")
		return nil, err
	}

	if len(habits) == 0 {
		return &TipResponse{
			Tip:         onboardingTip,
			Category:    "Getting Started",
			GeneratedAt: time.Now(),
		}, nil
	}

	summaries := Summarize(habits)
	prompt := BuildTipPrompt(summaries)

	text, err := s.provider.SendPrompt(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("Tip generation failed")
		return nil, err
	}

	log.WithField("habits", len(habits)).Info("Generated AI tip")
	return &TipResponse{
		Tip:         strings.TrimSpace(text),
		Category:    DominantCategory(summaries),
		GeneratedAt: time.Now(),
	}, nil
}

// Summarize condenses each habit's trailing week into one HabitSummary,
// using at most the 7 most recent logs.
func Summarize(habits []*habit.Habit) []HabitSummary {
	summaries := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		logs := h.Logs
		if len(logs) > summaryDays {
			logs = logs[:summaryDays]
		}

		avg := 0.0
		if len(logs) > 0 {
			sum := 0.0
			for _, l := range logs {
				sum += l.Value
			}
			avg = math.Round(sum/float64(len(logs))*10) / 10
		}

		summaries = append(summaries, HabitSummary{
			Name:           h.Name,
			Category:       strings.ToLower(string(h.Category)),
			TargetValue:    h.TargetValue,
			Unit:           h.Unit,
			Frequency:      strings.ToLower(string(h.Frequency)),
			CompletionRate: int(math.Round(float64(len(logs)) / summaryDays * 100)),
			AverageValue:   avg,
		})
	}
	return summaries
}

// DominantCategory picks the most frequent summary category, mapped to its
// display name. Ties keep the first-seen value: the left-to-right reduction
// only replaces the incumbent when a later category strictly outnumbers it.
func DominantCategory(summaries []HabitSummary) string {
	if len(summaries) == 0 {
		return "General"
	}

	counts := make(map[string]int, len(summaries))
	for _, s := range summaries {
		counts[s.Category]++
	}

	winner := summaries[0].Category
	for _, s := range summaries[1:] {
		if counts[s.Category] > counts[winner] {
			winner = s.Category
		}
	}

	if display, ok := categoryDisplay[winner]; ok {
		return display
	}
	return "General"
}
