package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerProfile) }

func registerProfile(r chi.Router, d deps.Deps) {
	r.Get("/profile", handlers.Profile(d))
	r.Put("/profile/name", handlers.SetDisplayName(d))
	r.Get("/rank", handlers.Rank(d))
}
