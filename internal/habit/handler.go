package habit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lucasmoraes-dev/habitflow/internal/config"
	"github.com/lucasmoraes-dev/habitflow/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrUnauthorized):
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrHabitNotFound):
		config.Error(w, http.StatusNotFound, "Habit not found")
	case errors.Is(err, ErrInvalidDate):
		config.Error(w, http.StatusBadRequest, "Invalid date")
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		config.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.service.ListHabits(r.Context())
	if err != nil {
		h.writeError(w, r, err, "list habits")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"habits": habits})
}

func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.CreateHabit(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "create habit")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{"habit": created})
}

func (h *Handler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	var req UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.UpdateHabit(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err, "update habit")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"habit": updated})
}

func (h *Handler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteHabit(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "delete habit")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Habit deleted successfully",
	})
}

func (h *Handler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := h.service.RecordLog(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err, "record habit log")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{"habitLog": stored})
}
