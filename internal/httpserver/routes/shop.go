package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerShop) }

func registerShop(r chi.Router, d deps.Deps) {
	r.Get("/cart", handlers.Cart(d))
	r.Post("/cart/{id}", handlers.AddToCart(d))
	r.Delete("/cart/{id}", handlers.RemoveFromCart(d))
}
