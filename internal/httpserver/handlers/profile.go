package handlers

import (
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
)

func Profile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Session.Profile())
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

type nameResponse struct {
	Changed bool   `json:"changed"`
	Name    string `json:"name"`
}

func SetDisplayName(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req nameRequest
		if !decodeBody(w, r, &req) {
			return
		}
		changed := d.Session.SetDisplayName(r.Context(), req.Name)
		writeJSON(w, http.StatusOK, nameResponse{Changed: changed, Name: d.Session.Snapshot().Profile.Name})
	}
}

// Rank reports the session rank, or the rank of ?points=N when given.
func Rank(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("points")
		if raw == "" {
			writeJSON(w, http.StatusOK, d.Session.Rank())
			return
		}

		points, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "points must be an integer")
			return
		}
		writeJSON(w, http.StatusOK, domain.ComputeRank(points, d.Catalog.Current().Ranks))
	}
}
