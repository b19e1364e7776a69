package handler

import (
	"net/http"

	"careercompass/internal/career"
)

// CareerPaths returns the fixed catalog of career paths.
// GET /api/career-paths
func (h *Handler) CareerPaths(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, career.Catalog())
}

// Questions returns the quiz questions. ?quick=true selects the short form.
// GET /api/questions
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if r.URL.Query().Get("quick") == "true" {
		writeJSON(w, http.StatusOK, career.QuickQuestions())
		return
	}
	writeJSON(w, http.StatusOK, career.Questions())
}

// Advisers returns the adviser roster.
// GET /api/advisers
func (h *Handler) Advisers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, career.Advisers())
}
