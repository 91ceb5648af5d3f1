package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
)

// Catalog returns the reference data in effect. The quiz answer is never
// serialised.
func Catalog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Catalog.Current())
	}
}
