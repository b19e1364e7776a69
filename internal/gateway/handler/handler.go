package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"careercompass/internal/books"
	"careercompass/internal/gateway/repository/testresult"
	"careercompass/internal/gateway/repository/user"
	"careercompass/internal/llm"
	"careercompass/internal/normalize"
)

// User-facing messages. The handler is the only place upstream failures are
// translated; raw model text and internal errors stay in server logs.
const (
	msgNotConfigured = "AI service is not configured on the server. Please add GEMINI_API_KEY to environment variables."
	msgEmptyResponse = "The AI service returned an empty response. This can happen with very specific or unusual queries. Please try a different search term."
	msgBadFormat     = "The AI service returned data in an unexpected format. We are working on a fix."
	msgBlocked       = "The request was blocked for safety reasons. Please try a different search query."
)

// Handler serves the career-guidance API. A nil ai client is the
// "unconfigured" state: AI endpoints answer with msgNotConfigured and make
// no upstream call.
type Handler struct {
	ai      llm.Client
	users   user.Repository
	results testresult.Repository
	books   *books.Client
}

func New(ai llm.Client, users user.Repository, results testresult.Repository, booksClient *books.Client) *Handler {
	return &Handler{ai: ai, users: users, results: results, books: booksClient}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requireMethod answers 405 with an Allow header when the method is wrong.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}

// writeUpstreamError maps gateway/normalizer failure kinds to status codes
// and short, actionable messages. generic covers everything unclassified.
func writeUpstreamError(w http.ResponseWriter, err error, generic string) {
	var malformed *normalize.MalformedError
	switch {
	case errors.Is(err, llm.ErrContentBlocked):
		writeError(w, http.StatusUnprocessableEntity, msgBlocked)
	case errors.Is(err, normalize.ErrEmptyResponse):
		writeError(w, http.StatusInternalServerError, msgEmptyResponse)
	case errors.As(err, &malformed):
		log.Printf("handler: unparseable model response: %s", truncate(malformed.Raw, 2000))
		writeError(w, http.StatusInternalServerError, msgBadFormat)
	case errors.Is(err, normalize.ErrUnexpectedShape):
		log.Printf("handler: unexpected model response shape: %v", err)
		writeError(w, http.StatusInternalServerError, msgBadFormat)
	default:
		log.Printf("handler: upstream failure: %v", err)
		writeError(w, http.StatusInternalServerError, generic)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func trimmed(s string) string { return strings.TrimSpace(s) }
