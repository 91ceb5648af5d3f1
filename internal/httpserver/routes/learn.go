package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerLearn) }

func registerLearn(r chi.Router, d deps.Deps) {
	r.Post("/courses/{id}/toggle", handlers.ToggleCourse(d))
	r.Post("/quiz", handlers.Quiz(d))
}
