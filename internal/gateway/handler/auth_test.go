package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/career"
)

func registerStudent(t *testing.T, h *Handler, name, email string) int64 {
	t.Helper()
	rec := doJSON(t, h.Register, http.MethodPost, "/api/register", map[string]string{
		"name":       name,
		"email":      email,
		"password":   "hunter22",
		"department": "Computer Science",
		"level":      "ND1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

func TestRegisterAndLogin(t *testing.T) {
	h := newTestHandler(nil)
	registerStudent(t, h, "Ada", "ada@example.com")

	rec := doJSON(t, h.Login, http.MethodPost, "/api/login", map[string]string{
		"email":    "ADA@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var u map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "Ada", u["name"])
	assert.Equal(t, "student", u["role"])
	assert.Equal(t, "none", u["followUpStatus"])
	assert.NotContains(t, u, "password", "hash never leaves the server")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newTestHandler(nil)
	registerStudent(t, h, "Ada", "ada@example.com")

	rec := doJSON(t, h.Register, http.MethodPost, "/api/register", map[string]string{
		"name":     "Other Ada",
		"email":    "Ada@Example.com",
		"password": "different",
		"level":    "ND2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "An account with this email already exists.", errorMessage(t, rec))
}

func TestLoginWrongPassword(t *testing.T) {
	h := newTestHandler(nil)
	registerStudent(t, h, "Ada", "ada@example.com")

	rec := doJSON(t, h.Login, http.MethodPost, "/api/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", errorMessage(t, rec))
}

func TestFollowUpStatus(t *testing.T) {
	h := newTestHandler(nil)
	id := registerStudent(t, h, "Ada", "ada@example.com")

	rec := doJSON(t, h.FollowUp, http.MethodPut, "/api/users/follow-up", map[string]any{
		"userId": id,
		"status": "contacted",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h.Users, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var students []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "contacted", students[0]["followUpStatus"])
}

func TestFollowUpInvalidStatus(t *testing.T) {
	h := newTestHandler(nil)
	id := registerStudent(t, h, "Ada", "ada@example.com")

	rec := doJSON(t, h.FollowUp, http.MethodPut, "/api/users/follow-up", map[string]any{
		"userId": id,
		"status": "ghosted",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status provided.", errorMessage(t, rec))
}

func TestTestResultsAndTrends(t *testing.T) {
	h := newTestHandler(nil)
	id := registerStudent(t, h, "Ada", "ada@example.com")

	rec := doJSON(t, h.TestResults, http.MethodPost, "/api/test-results", map[string]any{
		"userId":            id,
		"recommendedCareer": string(career.PathCloud),
		"dateTaken":         "2026-08-30",
		"fullResult":        career.FallbackResult(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h.TestResults, http.MethodGet, "/api/test-results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, string(career.PathCloud), records[0]["recommendedCareer"])

	rec = doJSON(t, h.Trends, http.MethodGet, "/api/trends", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trends []struct {
		Career string `json:"career"`
		Count  int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trends))
	require.Len(t, trends, len(career.PathNames()), "every path appears even with zero takers")
	counts := map[string]int{}
	for _, tr := range trends {
		counts[tr.Career] = tr.Count
	}
	assert.Equal(t, 1, counts[string(career.PathCloud)])
	assert.Equal(t, 0, counts[string(career.PathAI)])
}

func TestTestResultsMissingFields(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h.TestResults, http.MethodPost, "/api/test-results", map[string]any{
		"recommendedCareer": string(career.PathCloud),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestHandler(nil)

	rec := doJSON(t, h.CareerPaths, http.MethodGet, "/api/career-paths", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var paths []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paths))
	assert.Len(t, paths, len(career.PathNames()))

	rec = doJSON(t, h.Questions, http.MethodGet, "/api/questions?quick=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var quick []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quick))
	assert.Len(t, quick, 3)

	rec = doJSON(t, h.Advisers, http.MethodGet, "/api/advisers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var advisers []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &advisers))
	assert.NotEmpty(t, advisers)
}
