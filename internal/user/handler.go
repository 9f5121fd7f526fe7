package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lucasmoraes-dev/habitflow/internal/auth"
	"github.com/lucasmoraes-dev/habitflow/internal/config"
	"github.com/lucasmoraes-dev/habitflow/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			config.Error(w, http.StatusBadRequest, ErrEmailTaken.Error())
			return
		}
		log.WithError(err).Error("Signup failed")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := auth.GenerateJWT(resp.ID.String(), resp.Email, auth.TokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	auth.SetAuthCookie(w, token)

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    resp,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			return
		}
		log.WithError(err).Error("Login failed")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := auth.GenerateJWT(resp.ID.String(), resp.Email, auth.TokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	auth.SetAuthCookie(w, token)

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": resp})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resp, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.WithError(err).Error("Failed to load user")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"user": resp})
}
