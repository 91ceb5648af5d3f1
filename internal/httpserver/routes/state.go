package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerState) }

func registerState(r chi.Router, d deps.Deps) {
	r.Get("/state", handlers.State(d))
	r.Delete("/state", handlers.ResetState(d))
	r.Put("/view", handlers.SetView(d))
	r.Get("/catalog", handlers.Catalog(d))
}
