package journal

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrEmptyEntry) || errors.Is(err, ErrInvalidMood) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.service.List(r.Context())
	if entries == nil {
		entries = []JournalEntry{}
	}
	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if entries == nil {
		entries = []JournalEntry{}
	}
	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Stats(r.Context()))
}
