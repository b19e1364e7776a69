package handler

import (
	"net/http"

	"careercompass/internal/llm"
	"careercompass/internal/normalize"
	"careercompass/internal/prompt"
)

// Recommendation turns quiz answers into a career recommendation.
// POST /api/career-test {"answers": {"q1": "...", ...}}
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "Quiz answers are required.")
		return
	}
	if h.ai == nil {
		writeError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	raw, err := h.ai.GenerateText(r.Context(), prompt.Recommendation(req.Answers), llm.Options{
		Schema:      prompt.RecommendationSchema(),
		Temperature: 0.5,
	})
	if err != nil {
		writeUpstreamError(w, err, "An unexpected error occurred while generating a recommendation. Please try again.")
		return
	}

	result, err := normalize.Recommendation(raw)
	if err != nil {
		writeUpstreamError(w, err, "An unexpected error occurred while generating a recommendation. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
