package habit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lucasmoraes-dev/habitflow/internal/auth"
	"github.com/lucasmoraes-dev/habitflow/internal/config"
	util "github.com/lucasmoraes-dev/habitflow/internal/utils"
	"github.com/sirupsen/logrus"
)

const listLogWindow = 30 * 24 * time.Hour

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidDate   = errors.New("invalid date")
)

type Service interface {
	CreateHabit(ctx context.Context, req CreateHabitRequest) (*Habit, error)
	ListHabits(ctx context.Context) ([]*Habit, error)
	UpdateHabit(ctx context.Context, id string, req UpdateHabitRequest) (*Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	RecordLog(ctx context.Context, habitID string, req CreateLogRequest) (*HabitLog, error)
}

type service struct {
	repo HabitRepository
}

func NewService(repo HabitRepository) Service {
	return &service{repo: repo}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return uid, nil
}

func (s *service) CreateHabit(ctx context.Context, req CreateHabitRequest) (*Habit, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create habit")
	if err != nil {
		return nil, err
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = FrequencyDaily
	}

	h := &Habit{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Frequency:   frequency,
		IsActive:    true,
		UserID:      userID,
		Logs:        []HabitLog{},
	}

	if err := s.repo.Create(h); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}

	log.WithField("habit_id", h.ID).Info("Habit created successfully")
	return h, nil
}

func (s *service) ListHabits(ctx context.Context) ([]*Habit, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list habits")
	if err != nil {
		return nil, err
	}

	since := util.StartOfDay(time.Now().Add(-listLogWindow))
	habits, err := s.repo.ListActiveWithLogs(userID, since, 0)
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
		return nil, err
	}
	return habits, nil
}

// resolveOwned loads the habit when the id parses and the row belongs to the
// caller. Any other outcome is ErrHabitNotFound: foreign-owned habits are
// indistinguishable from absent ones.
func (s *service) resolveOwned(id string, userID uuid.UUID) (*Habit, error) {
	habitID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrHabitNotFound
	}

	h, err := s.repo.FindByIDAndUser(habitID, userID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHabitNotFound
	}
	return h, nil
}

func applyUpdate(h *Habit, req UpdateHabitRequest) {
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Description != nil {
		h.Description = *req.Description
	}
	if req.Category != nil {
		h.Category = *req.Category
	}
	if req.TargetValue != nil {
		h.TargetValue = req.TargetValue
	}
	if req.Unit != nil {
		h.Unit = *req.Unit
	}
	if req.Frequency != nil {
		h.Frequency = *req.Frequency
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
}

func (s *service) UpdateHabit(ctx context.Context, id string, req UpdateHabitRequest) (*Habit, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "update habit")
	if err != nil {
		return nil, err
	}

	h, err := s.resolveOwned(id, userID)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			log.WithFields(logrus.Fields{
				"habit_id": id,
				"user_id":  userID,
			}).Warn("Habit not found or does not belong to user")
		}
		return nil, err
	}

	applyUpdate(h, req)
	h.UpdatedAt = time.Now()

	if err := s.repo.Update(h); err != nil {
		log.WithError(err).Error("Failed to update habit")
		return nil, err
	}

	log.WithField("habit_id", h.ID).Info("Habit updated successfully")
	return h, nil
}

// DeleteHabit soft-deletes: the habit drops out of listings and stats but
// its rows and logs stay behind.
func (s *service) DeleteHabit(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "delete habit")
	if err != nil {
		return err
	}

	h, err := s.resolveOwned(id, userID)
	if err != nil {
		return err
	}

	h.IsActive = false
	h.UpdatedAt = time.Now()

	if err := s.repo.Update(h); err != nil {
		log.WithError(err).Error("Failed to delete habit")
		return err
	}

	log.WithField("habit_id", h.ID).Info("Habit deleted successfully")
	return nil
}

func (s *service) RecordLog(ctx context.Context, habitID string, req CreateLogRequest) (*HabitLog, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "record habit log")
	if err != nil {
		return nil, err
	}

	h, err := s.resolveOwned(habitID, userID)
	if err != nil {
		return nil, err
	}
	if !h.IsActive {
		return nil, ErrHabitNotFound
	}

	day := util.StartOfDay(time.Now())
	if req.Date != "" {
		day, err = util.ParseDay(req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	entry := &HabitLog{
		ID:      uuid.New(),
		Value:   req.Value,
		Notes:   req.Notes,
		Date:    day,
		HabitID: h.ID,
		UserID:  userID,
	}

	stored, err := s.repo.UpsertLog(entry)
	if err != nil {
		log.WithError(err).Error("Failed to record habit log")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"habit_id": h.ID,
		"date":     util.DayString(day),
	}).Info("Habit log recorded")
	return stored, nil
}
