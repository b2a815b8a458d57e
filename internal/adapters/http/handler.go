package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"fitcoach/internal/app/chat"
	"fitcoach/internal/domain"
)

// Server maps the HTTP surface onto the chat service. Every route acts on
// the single configured identity.
type Server struct {
	svc       *chat.Service
	identity  domain.Identity
	staticDir string
}

func NewServer(svc *chat.Service, identity domain.Identity, staticDir string) http.Handler {
	s := &Server{svc: svc, identity: identity, staticDir: staticDir}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/chat/history", s.handleHistory)

	// Applied inside out: request-id is the outermost so the logger sees it.
	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type historyItem struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResponse struct {
	History []historyItem `json:"history"`
}

type clearHistoryResponse struct {
	Message string `json:"message"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

// GET / serves the static chat page. The catch-all pattern also absorbs any
// unknown path, which is a plain 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	page := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(page); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "chat interface not found",
		})
		return
	}
	http.ServeFile(w, r, page)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	reply, err := s.svc.SendMessage(r.Context(), s.identity, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetHistory(w, r)
	case http.MethodDelete:
		s.handleClearHistory(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	turns, err := s.svc.History(r.Context(), s.identity)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]historyItem, 0, len(turns))
	for _, t := range turns {
		items = append(items, historyItem{
			Role:      string(t.Role),
			Content:   t.Content,
			Timestamp: t.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, historyResponse{History: items})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.svc.ClearHistory(r.Context(), s.identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clearHistoryResponse{
		Message: fmt.Sprintf("Chat history cleared. Deleted %d messages.", deleted),
	})
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto status codes: invalid
// input explains itself with a 400, everything else is a generic processing
// failure with a short cause and no connection details.
func writeError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		badRequest(w, invalid.Reason)
		return
	}

	cause := "internal error"
	var storeErr *domain.StoreError
	var upstreamErr *domain.UpstreamError
	switch {
	case errors.As(err, &storeErr):
		cause = "store " + storeErr.Op + " failed"
	case errors.As(err, &upstreamErr):
		cause = "upstream generation failed"
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "error processing chat message: " + cause,
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
