package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pebbleway/pebbleway-api/internal/auth"
	"github.com/pebbleway/pebbleway-api/internal/goal"
	"github.com/pebbleway/pebbleway-api/internal/journal"
	"github.com/pebbleway/pebbleway-api/internal/middlewares"
	"github.com/pebbleway/pebbleway-api/internal/settings"
)

type RouterConfig struct {
	AuthHandler     *auth.Handler
	GoalHandler     *goal.Handler
	JournalHandler  *journal.Handler
	SettingsHandler *settings.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.AuthHandler.SignUp)
		r.Post("/signin", cfg.AuthHandler.SignIn)
		r.Post("/signout", cfg.AuthHandler.SignOut)
		r.Post("/reset-password", cfg.AuthHandler.ResetPassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/auth/update-password", cfg.AuthHandler.UpdatePassword)
		r.Get("/users/me", cfg.AuthHandler.Me)

		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/journal", journal.Routes(cfg.JournalHandler))
		r.Mount("/settings", settings.Routes(cfg.SettingsHandler))
	})

	return r
}
