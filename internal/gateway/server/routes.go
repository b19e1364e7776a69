package server

import (
	"net/http"

	"careercompass/internal/gateway/handler"
	"careercompass/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	// AI endpoints
	mux.HandleFunc("/api/jobs", h.Jobs)
	mux.HandleFunc("/api/career-test", h.Recommendation)
	mux.HandleFunc("/api/career-qa", h.CareerQA)
	mux.HandleFunc("/api/adviser-chat", h.AdviserChat)
	mux.HandleFunc("/ws/adviser-chat", h.AdviserChatWS)

	// Accounts & admin
	mux.HandleFunc("/api/register", h.Register)
	mux.HandleFunc("/api/login", h.Login)
	mux.HandleFunc("/api/users", h.Users)
	mux.HandleFunc("/api/users/follow-up", h.FollowUp)
	mux.HandleFunc("/api/test-results", h.TestResults)
	mux.HandleFunc("/api/trends", h.Trends)

	// Static catalog & library
	mux.HandleFunc("/api/career-paths", h.CareerPaths)
	mux.HandleFunc("/api/questions", h.Questions)
	mux.HandleFunc("/api/advisers", h.Advisers)
	mux.HandleFunc("/api/books", h.Books)

	// Middleware
	return middleware.CORS(middleware.RequestID(mux))
}
