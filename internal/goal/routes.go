package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/by-date", h.ByDate)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/toggle", h.ToggleComplete)

	return r
}
