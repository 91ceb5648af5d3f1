package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/session"
)

func Cart(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Session.Cart())
	}
}

type addToCartResponse struct {
	Award session.Award    `json:"award"`
	Cart  session.CartView `json:"cart"`
}

func AddToCart(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		award := d.Session.AddToCart(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, addToCartResponse{Award: award, Cart: d.Session.Cart()})
	}
}

type removeFromCartResponse struct {
	Changed bool             `json:"changed"`
	Cart    session.CartView `json:"cart"`
}

func RemoveFromCart(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		changed := d.Session.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, removeFromCartResponse{Changed: changed, Cart: d.Session.Cart()})
	}
}
