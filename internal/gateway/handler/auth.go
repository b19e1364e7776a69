package handler

import (
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"careercompass/internal/gateway/repository/user"
)

// Register creates a student account.
// POST /api/register {"name","email","password","department","level"}
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Department string `json:"department"`
		Level      string `json:"level"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	name, email, level := trimmed(req.Name), trimmed(req.Email), trimmed(req.Level)
	if name == "" || email == "" || req.Password == "" || level == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: name, email, password, level")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		log.Printf("auth: hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	created, err := h.users.Create(r.Context(), user.User{
		Name:           name,
		Email:          email,
		Password:       string(hash),
		Department:     trimmed(req.Department),
		Level:          level,
		Role:           "student",
		FollowUpStatus: "none",
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "An account with this email already exists.")
			return
		}
		log.Printf("auth: create user: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Login checks credentials and returns the account.
// POST /api/login {"email","password"}
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	email := trimmed(req.Email)
	if email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: email, password")
		return
	}

	u, ok, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		log.Printf("auth: lookup user: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, u)
}
