package habit

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	Category    Category  `gorm:"type:text;not null" json:"category"`
	TargetValue *float64  `json:"target_value,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Frequency   Frequency `gorm:"type:text;not null;default:DAILY" json:"frequency"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Logs []HabitLog `gorm:"foreignKey:HabitID" json:"habit_logs"`
}

// HabitLog holds one day's entry for a habit. The unique index on
// (habit_id, date) is what makes the log upsert atomic: dates are
// normalized to UTC midnight before they get here.
type HabitLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Value     float64   `gorm:"not null" json:"value"`
	Notes     string    `json:"notes,omitempty"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_habit_logs_habit_day,priority:2" json:"date"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_logs_habit_day,priority:1" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
