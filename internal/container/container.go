package container

import (
	"context"
	"log"

	"github.com/lucasmoraes-dev/habitflow/internal/aitip"
	"github.com/lucasmoraes-dev/habitflow/internal/auth"
	"github.com/lucasmoraes-dev/habitflow/internal/config"
	"github.com/lucasmoraes-dev/habitflow/internal/dashboard"
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	"github.com/lucasmoraes-dev/habitflow/internal/user"
)

type Container struct {
	Config             *config.Config
	UserContainer      *user.UserContainer
	HabitContainer     *habit.HabitContainer
	DashboardContainer *dashboard.DashboardContainer
	AITipContainer     *aitip.AITipContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// The unique index on habit_logs (habit_id, date) backs the log upsert;
	// migrations must run before the first request.
	if err := config.DB.AutoMigrate(&user.User{}, &habit.Habit{}, &habit.HabitLog{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	habitContainer := habit.NewHabitContainer(config.DB)
	dashboardContainer := dashboard.NewDashboardContainer(config.DB, habitContainer.Repo, userContainer.Service)

	aiTipContainer, err := aitip.NewAITipContainer(ctx, cfg, habitContainer.Repo)
	if err != nil {
		log.Fatalf("failed to initialize AI tip provider: %v", err)
	}

	return &Container{
		Config:             cfg,
		UserContainer:      userContainer,
		HabitContainer:     habitContainer,
		DashboardContainer: dashboardContainer,
		AITipContainer:     aiTipContainer,
	}
}
