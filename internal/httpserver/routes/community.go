package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerCommunity) }

func registerCommunity(r chi.Router, d deps.Deps) {
	r.Get("/threads", handlers.Threads(d))
	r.Post("/threads", handlers.CreateThread(d))
	r.Post("/threads/{id}/like", handlers.LikeThread(d))

	r.Get("/ideas", handlers.Ideas(d))
	r.Post("/ideas", handlers.ShareIdea(d))
	r.Post("/ideas/{id}/upvote", handlers.UpvoteIdea(d))
}
