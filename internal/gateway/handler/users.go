package handler

import (
	"errors"
	"log"
	"net/http"

	"careercompass/internal/career"
	"careercompass/internal/gateway/repository/user"
)

// Users lists registered students for the admin dashboard, newest first.
// GET /api/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	students, err := h.users.ListStudents(r.Context())
	if err != nil {
		log.Printf("users: list students: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// FollowUp updates a student's follow-up status.
// PUT /api/users/follow-up {"userId": 1, "status": "contacted"}
func (h *Handler) FollowUp(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	var req struct {
		UserID int64  `json:"userId"`
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if !career.ValidFollowUpStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status provided.")
		return
	}
	if err := h.users.SetFollowUpStatus(r.Context(), req.UserID, req.Status); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		log.Printf("users: set follow-up status: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
