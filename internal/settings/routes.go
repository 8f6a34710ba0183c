package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Get("/notifications", h.GetNotifications)
	r.Put("/notifications", h.UpdateNotifications)
	r.Get("/theme", h.GetTheme)
	r.Put("/theme", h.UpdateTheme)

	return r
}
