package dashboard

import (
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	"github.com/lucasmoraes-dev/habitflow/internal/user"
	"gorm.io/gorm"
)

type DashboardContainer struct {
	Handler *Handler
}

func NewDashboardContainer(db *gorm.DB, habitRepo habit.HabitRepository, users user.Service) *DashboardContainer {
	repo := NewRepository(db)
	service := NewService(repo, habitRepo, users)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
	}
}
