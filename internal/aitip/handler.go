package aitip

import (
	"errors"
	"net/http"

	"github.com/lucasmoraes-dev/habitflow/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateTip(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	tip, err := h.service.GenerateTip(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			config.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.WithError(err).Error("Failed to generate health tip")
		config.Error(w, http.StatusInternalServerError, "Failed to generate health tip")
		return
	}

	config.JSON(w, http.StatusOK, tip)
}
