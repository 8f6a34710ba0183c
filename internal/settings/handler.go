package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Profile(r.Context()))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.UpdateProfile(r.Context(), p)
	if err != nil {
		if errors.Is(err, ErrUsernameTooShort) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, saved)
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Notifications(r.Context()))
}

func (h *Handler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var n NotificationPrefs
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.UpdateNotifications(r.Context(), n)
	if err != nil {
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, saved)
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]Theme{"theme": h.service.Theme(r.Context())})
}

func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.service.UpdateTheme(r.Context(), body.Theme)
	if err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]Theme{"theme": t})
}
