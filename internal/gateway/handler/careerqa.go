package handler

import (
	"net/http"

	"careercompass/internal/llm"
	"careercompass/internal/prompt"
)

// CareerQA answers a follow-up question about a recommended career.
// POST /api/career-qa {"question": "...", "careerContext": "..."}
func (h *Handler) CareerQA(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Question      string `json:"question"`
		CareerContext string `json:"careerContext"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	question, careerContext := trimmed(req.Question), trimmed(req.CareerContext)
	if question == "" || careerContext == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: question, careerContext")
		return
	}
	if h.ai == nil {
		writeError(w, http.StatusInternalServerError, "AI service is not configured.")
		return
	}

	text, err := h.ai.GenerateText(r.Context(), prompt.FollowUp(question, careerContext), llm.Options{
		Temperature: 0.6,
	})
	if err != nil {
		writeUpstreamError(w, err, "Failed to generate AI response.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": text})
}
