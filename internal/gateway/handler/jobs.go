package handler

import (
	"net/http"

	"careercompass/internal/llm"
	"careercompass/internal/normalize"
	"careercompass/internal/prompt"
)

// Jobs generates remote job listings for a search query.
// POST /api/jobs {"query": "..."}
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Query string `json:"query"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	query := trimmed(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "A search query string is required.")
		return
	}
	if h.ai == nil {
		writeError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	raw, err := h.ai.GenerateText(r.Context(), prompt.JobSearch(query), llm.Options{
		Schema:      prompt.JobListingSchema(),
		Temperature: 0.7,
	})
	if err != nil {
		writeUpstreamError(w, err, "An unexpected error occurred while generating job listings. Please try again.")
		return
	}

	jobs, err := normalize.Jobs(raw)
	if err != nil {
		writeUpstreamError(w, err, "An unexpected error occurred while generating job listings. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}
