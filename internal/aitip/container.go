package aitip

import (
	"context"

	"github.com/lucasmoraes-dev/habitflow/internal/config"
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
)

type AITipContainer struct {
	Handler *Handler
}

func NewAITipContainer(ctx context.Context, cfg *config.Config, habitRepo habit.HabitRepository) (*AITipContainer, error) {
	provider, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	service := NewService(provider, habitRepo)
	handler := NewHandler(service)

	return &AITipContainer{
		Handler: handler,
	}, nil
}
