package aitip

import "time"

type TipResponse struct {
	Tip         string    `json:"tip"`
	Category    string    `json:"category"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// HabitSummary is one bullet of the weekly digest fed to the model.
// Category is lowercased; CompletionRate is a whole percent over a 7-day
// week; AverageValue is rounded to one decimal.
type HabitSummary struct {
	Name           string
	Category       string
	TargetValue    *float64
	Unit           string
	Frequency      string
	CompletionRate int
	AverageValue   float64
}
