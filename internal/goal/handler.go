package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pebbleway/pebbleway-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrInvalidTargetDate) ||
		errors.Is(err, ErrInvalidProgress)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if isValidationError(err) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, g)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		config.JSONError(w, http.StatusBadRequest, "id required")
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		switch {
		case isValidationError(err):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrGoalNotFound):
			config.JSONError(w, http.StatusNotFound, err.Error())
		default:
			config.JSONError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, g)
}

func (h *Handler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		config.JSONError(w, http.StatusBadRequest, "id required")
		return
	}

	g, err := h.service.ToggleComplete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			config.JSONError(w, http.StatusNotFound, err.Error())
			return
		}
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, g)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Stats(r.Context()))
}

func (h *Handler) ByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	goals, err := h.service.ByDate(r.Context(), date)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	config.JSON(w, http.StatusOK, goals)
}
