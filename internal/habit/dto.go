package habit

type CreateHabitRequest struct {
	Name        string    `json:"name" validate:"required,min=1"`
	Description string    `json:"description"`
	Category    Category  `json:"category" validate:"required,oneof=HEALTH FITNESS NUTRITION SLEEP MINDFULNESS PRODUCTIVITY SOCIAL OTHER"`
	TargetValue *float64  `json:"target_value" validate:"omitempty,gt=0"`
	Unit        string    `json:"unit"`
	Frequency   Frequency `json:"frequency" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
}

// UpdateHabitRequest uses pointers throughout: a nil field keeps the stored
// value, mirroring COALESCE-on-null update semantics.
type UpdateHabitRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Category    *Category  `json:"category" validate:"omitempty,oneof=HEALTH FITNESS NUTRITION SLEEP MINDFULNESS PRODUCTIVITY SOCIAL OTHER"`
	TargetValue *float64   `json:"target_value" validate:"omitempty,gt=0"`
	Unit        *string    `json:"unit"`
	Frequency   *Frequency `json:"frequency" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
	IsActive    *bool      `json:"is_active"`
}

type CreateLogRequest struct {
	Value float64 `json:"value" validate:"required,gt=0"`
	Notes string  `json:"notes"`
	Date  string  `json:"date"`
}
