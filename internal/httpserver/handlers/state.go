package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
)

type stateResponse struct {
	domain.Snapshot
	Rank           domain.Rank `json:"rank"`
	CartCount      int         `json:"cartCount"`
	CartTotal      int         `json:"cartTotal"`
	CartTotalLabel string      `json:"cartTotalLabel"`
}

func buildState(d deps.Deps) stateResponse {
	v := d.Session.State()
	return stateResponse{
		Snapshot:       v.Snapshot,
		Rank:           v.Rank,
		CartCount:      v.Cart.Count,
		CartTotal:      v.Cart.Total,
		CartTotalLabel: v.Cart.TotalLabel,
	}
}

// State returns the full session with its derived values.
func State(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, buildState(d))
	}
}

// ResetState discards the session and starts over from the defaults.
func ResetState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Session.Reset(r.Context())
		writeJSON(w, http.StatusOK, buildState(d))
	}
}

type viewRequest struct {
	View string `json:"view"`
}

type viewResponse struct {
	Changed bool   `json:"changed"`
	Page    string `json:"page"`
}

// SetView records the page the client is showing.
func SetView(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req viewRequest
		if !decodeBody(w, r, &req) {
			return
		}
		changed := d.Session.SetView(r.Context(), req.View)
		writeJSON(w, http.StatusOK, viewResponse{Changed: changed, Page: d.Session.Snapshot().Page})
	}
}
