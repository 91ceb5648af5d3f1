package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/session"
)

type toggleResponse struct {
	CourseID   string            `json:"courseId"`
	Enrollment domain.Enrollment `json:"enrollment"`
	Award      session.Award     `json:"award"`
}

func ToggleCourse(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e, award := d.Session.ToggleCourse(r.Context(), id)
		writeJSON(w, http.StatusOK, toggleResponse{CourseID: id, Enrollment: e, Award: award})
	}
}

type quizRequest struct {
	Answer *bool `json:"answer"`
}

type quizResponse struct {
	Correct bool          `json:"correct"`
	Award   session.Award `json:"award"`
}

// Quiz grades {"answer": bool} against the catalog quiz.
func Quiz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quizRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Answer == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: session.ErrMissingInput.Error(), Field: "answer"})
			return
		}
		correct, award := d.Session.AnswerQuiz(r.Context(), *req.Answer)
		writeJSON(w, http.StatusOK, quizResponse{Correct: correct, Award: award})
	}
}
