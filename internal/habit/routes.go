package habit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListHabits)
	r.Post("/", h.CreateHabit)
	r.Put("/{id}", h.UpdateHabit)
	r.Delete("/{id}", h.DeleteHabit)
	r.Post("/{id}/logs", h.CreateLog)
	return r
}
