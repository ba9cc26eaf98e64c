// Package server is the thin HTTP glue in front of the agent core. It
// decodes requests, forwards chat text plus user id to the agent, and
// relays the returned string. The agent never errors, so chat requests
// only fail on malformed input.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dulceai/dulceai/agent"
	"github.com/dulceai/dulceai/logging"
	"github.com/dulceai/dulceai/observability"
)

// Server wires HTTP routes to the agent.
type Server struct {
	agent  *agent.Agent
	logger logging.Logger
}

// New creates a server around the given agent.
func New(a *agent.Agent, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Server{agent: a, logger: logger}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/api/chat", s.handleChat)
	r.Get("/api/status", s.handleStatus)
	r.Get("/api/products", s.handleProducts)
	r.Get("/api/products/category/{category}", s.handleProductsByCategory)
	r.Get("/api/recommendations/{userID}", s.handleRecommendations)
	r.Get("/api/memory/{userID}/export", s.handleMemoryExport)
	r.Get("/api/contact", s.handleContact)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", observability.Handler())

	return r
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	Reply  string `json:"reply"`
	UserID string `json:"user_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := s.agent.Process(r.Context(), req.Message, req.UserID)

	userID := req.UserID
	if userID == "" {
		userID = agent.AnonymousUserID
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply, UserID: userID})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.agent.Status())
}

func (s *Server) handleProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.agent.Catalog().All())
}

func (s *Server) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	products := s.agent.Catalog().ByCategory(category)
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "no products in category")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.agent.Sessions().Get(chi.URLParam(r, "userID"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown user")
		return
	}

	sess.Lock()
	summary := sess.Context.Summary()
	sess.Unlock()

	// preference tags first, then recently consulted products
	terms := append(summary.Preferences, summary.RecentProducts...)
	writeJSON(w, http.StatusOK, s.agent.Catalog().Recommend(terms))
}

func (s *Server) handleMemoryExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.agent.Sessions().Get(chi.URLParam(r, "userID"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown user")
		return
	}

	sess.Lock()
	data, err := sess.Memory.Export()
	sess.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleContact(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.agent.Business())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
