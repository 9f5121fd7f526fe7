package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	"gorm.io/gorm"
)

type Repository interface {
	CountHabits(userID uuid.UUID) (int64, error)
	CountActiveHabits(userID uuid.UUID) (int64, error)
	CountLogsBetween(userID uuid.UUID, from, to time.Time) (int64, error)
	CountLogsSince(userID uuid.UUID, since time.Time) (int64, error)
	LogDatesSince(userID uuid.UUID, since time.Time) ([]time.Time, error)
	CategoryCounts(userID uuid.UUID) ([]CategoryStat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountHabits(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&habit.Habit{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountActiveHabits(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&habit.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *repository) CountLogsBetween(userID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&habit.HabitLog{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *repository) CountLogsSince(userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&habit.HabitLog{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *repository) LogDatesSince(userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&habit.HabitLog{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Pluck("date", &dates).Error
	return dates, err
}

func (r *repository) CategoryCounts(userID uuid.UUID) ([]CategoryStat, error) {
	var stats []CategoryStat
	err := r.db.Model(&habit.Habit{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ? AND is_active = ?", userID, true).
		Group("category").
		Scan(&stats).Error
	return stats, err
}
