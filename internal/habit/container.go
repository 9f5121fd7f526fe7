package habit

import "gorm.io/gorm"

type HabitContainer struct {
	Handler *Handler
	Service Service
	Repo    HabitRepository
}

func NewHabitContainer(db *gorm.DB) *HabitContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &HabitContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
