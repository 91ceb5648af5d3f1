package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/persist"
)

const pingTimeout = 2 * time.Second

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Store string `json:"store,omitempty"`
	Error string `json:"error,omitempty"`
}

// pingSlot checks the persistence backend when it supports it.
func pingSlot(ctx context.Context, slot persist.Slot) error {
	p, ok := slot.(persist.Pinger)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return p.Ping(ctx)
}

// Readyz answers 503 while the session store is unreachable.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{Ready: true}
		if d.Slot != nil {
			resp.Store = d.Slot.Name()
			if err := pingSlot(r.Context(), d.Slot); err != nil {
				resp.Ready = false
				resp.Error = err.Error()
				writeJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
