package auth

import (
	"net/http"

	"github.com/lucasmoraes-dev/habitflow/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearAuthCookie(w)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
