package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/makerhub/internal/logger"
	"github.com/MrSnakeDoc/makerhub/internal/session"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeSessionError maps an operation error onto a response.
func writeSessionError(w http.ResponseWriter, log logger.Logger, err error) {
	var serr *session.Error
	if errors.As(err, &serr) && errors.Is(err, session.ErrMissingInput) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: serr.Kind.Error(), Field: serr.Field})
		return
	}
	log.Error("unexpected session error", logger.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeBody reads a JSON object into dst. An empty body leaves dst as is.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

type changedResponse struct {
	Changed bool `json:"changed"`
}
