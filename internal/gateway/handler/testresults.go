package handler

import (
	"log"
	"net/http"

	"careercompass/internal/career"
	"careercompass/internal/gateway/repository/testresult"
)

// TestResults stores and lists quiz outcomes.
// GET  /api/test-results
// POST /api/test-results {"userId","recommendedCareer","dateTaken","fullResult"}
func (h *Handler) TestResults(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records, err := h.results.List(r.Context())
		if err != nil {
			log.Printf("testresults: list: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, records)
	case http.MethodPost:
		var req struct {
			UserID            int64             `json:"userId"`
			RecommendedCareer string            `json:"recommendedCareer"`
			DateTaken         string            `json:"dateTaken"`
			FullResult        career.TestResult `json:"fullResult"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if req.UserID == 0 || trimmed(req.RecommendedCareer) == "" || trimmed(req.DateTaken) == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields: userId, recommendedCareer, dateTaken")
			return
		}
		stored, err := h.results.Add(r.Context(), testresult.Record{
			UserID:            req.UserID,
			RecommendedCareer: trimmed(req.RecommendedCareer),
			DateTaken:         trimmed(req.DateTaken),
			FullResult:        req.FullResult,
		})
		if err != nil {
			log.Printf("testresults: add: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}

// Trends aggregates stored results per recommended career.
// GET /api/trends
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	counts, err := h.results.CountByCareer(r.Context())
	if err != nil {
		log.Printf("trends: count: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	// Every known path shows up in the chart even with zero takers.
	type trend struct {
		Career string `json:"career"`
		Count  int    `json:"count"`
	}
	out := make([]trend, 0, len(career.PathNames()))
	for _, name := range career.PathNames() {
		out = append(out, trend{Career: string(name), Count: counts[string(name)]})
	}
	writeJSON(w, http.StatusOK, out)
}
