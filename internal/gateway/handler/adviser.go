package handler

import (
	"net/http"

	"careercompass/internal/llm"
	"careercompass/internal/prompt"
)

// AdviserChat answers a student question in the voice of a named adviser.
// POST /api/adviser-chat {"question": "...", "adviserName": "...", "adviserField": "..."}
func (h *Handler) AdviserChat(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Question     string `json:"question"`
		AdviserName  string `json:"adviserName"`
		AdviserField string `json:"adviserField"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	question := trimmed(req.Question)
	name := trimmed(req.AdviserName)
	field := trimmed(req.AdviserField)
	if question == "" || name == "" || field == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: question, adviserName, adviserField")
		return
	}
	if h.ai == nil {
		writeError(w, http.StatusInternalServerError, "AI service is not configured.")
		return
	}

	text, err := h.ai.GenerateText(r.Context(), prompt.AdviserChat(question, name, field), llm.Options{
		Temperature: 0.7,
		TopP:        1,
	})
	if err != nil {
		writeUpstreamError(w, err, "Failed to generate AI response.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": text})
}
