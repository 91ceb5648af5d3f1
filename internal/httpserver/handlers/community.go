package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/session"
)

func Threads(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Session.Snapshot().Posts)
	}
}

type threadRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type threadResponse struct {
	Thread domain.Thread `json:"thread"`
	Award  session.Award `json:"award"`
}

func CreateThread(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req threadRequest
		if !decodeBody(w, r, &req) {
			return
		}
		thread, award, err := d.Session.CreateThread(r.Context(), req.Title, req.Body)
		if err != nil {
			writeSessionError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, threadResponse{Thread: thread, Award: award})
	}
}

func LikeThread(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		changed := d.Session.LikeThread(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
	}
}

func Ideas(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Session.Snapshot().Ideas)
	}
}

type ideaRequest struct {
	Title string `json:"title"`
}

type ideaResponse struct {
	Idea  domain.Idea   `json:"idea"`
	Award session.Award `json:"award"`
}

func ShareIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ideaRequest
		if !decodeBody(w, r, &req) {
			return
		}
		idea, award, err := d.Session.ShareIdea(r.Context(), req.Title)
		if err != nil {
			writeSessionError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, ideaResponse{Idea: idea, Award: award})
	}
}

func UpvoteIdea(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		changed := d.Session.UpvoteIdea(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, changedResponse{Changed: changed})
	}
}
