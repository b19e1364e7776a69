package handler

import (
	"log"
	"net/http"
)

// Books searches the library for career-relevant reading.
// GET /api/books?q=golang&category=Cloud%20Computing
func (h *Handler) Books(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	found, err := h.books.Search(r.Context(), q.Get("q"), q.Get("category"))
	if err != nil {
		log.Printf("books: search: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to search for books. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, found)
}
