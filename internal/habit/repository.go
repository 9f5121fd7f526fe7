package habit

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitRepository interface {
	Create(h *Habit) error
	FindByIDAndUser(id, userID uuid.UUID) (*Habit, error)
	ListActiveWithLogs(userID uuid.UUID, logsSince time.Time, limit int) ([]*Habit, error)
	Update(h *Habit) error
	UpsertLog(l *HabitLog) (*HabitLog, error)
}

type habitRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(h *Habit) error {
	return r.db.Create(h).Error
}

func (r *habitRepository) FindByIDAndUser(id, userID uuid.UUID) (*Habit, error) {
	var h Habit
	err := r.db.First(&h, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

// ListActiveWithLogs returns the user's active habits, newest first, each
// carrying its logs from logsSince onward ordered by date descending.
// limit <= 0 means no limit.
func (r *habitRepository) ListActiveWithLogs(userID uuid.UUID, logsSince time.Time, limit int) ([]*Habit, error) {
	var habits []*Habit
	q := r.db.
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Where("date >= ?", logsSince).Order("date DESC")
		}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&habits).Error; err != nil {
		return nil, err
	}

	// clients expect habit_logs to be [], never null
	for _, h := range habits {
		if h.Logs == nil {
			h.Logs = []HabitLog{}
		}
	}
	return habits, nil
}

func (r *habitRepository) Update(h *Habit) error {
	return r.db.Save(h).Error
}

// UpsertLog inserts the day's log or, when the (habit_id, date) unique index
// already holds a row, overwrites its value and notes in a single statement.
func (r *habitRepository) UpsertLog(l *HabitLog) (*HabitLog, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "notes"}),
	}).Create(l).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored row (original id and created_at
	// when the conflict path ran).
	var stored HabitLog
	if err := r.db.First(&stored, "habit_id = ? AND date = ?", l.HabitID, l.Date).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}
