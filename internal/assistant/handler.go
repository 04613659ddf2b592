package assistant

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mckinzey/atrium/internal/auth"
	"github.com/mckinzey/atrium/pkg/handlers"
	"github.com/mckinzey/atrium/pkg/routes"
)

// Handler provides HTTP endpoints for the chat pipeline.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// ChatRequest is the chat endpoint's JSON body. History is the
// client-maintained transcript forwarded for conversational context.
type ChatRequest struct {
	Query   string `json:"query"`
	History []Turn `json:"conversation_history"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "assistant"),
	}
}

// Routes returns the route group definition for chat endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/chat", Handler: h.Chat},
			{Method: "POST", Pattern: "/reset_chat", Handler: h.ResetChat},
		},
	}
}

// Chat answers an employee question and records the exchange in the
// server-side conversation transcript.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyQuery)
		return
	}

	emp := auth.CurrentEmployee(r.Context())
	if emp == nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, auth.ErrNotAuthenticated)
		return
	}

	result, err := h.sys.Answer(r.Context(), AnswerRequest{
		Query:      req.Query,
		UserID:     emp.Username,
		Department: emp.Department,
		History:    req.History,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	now := time.Now()
	h.sys.Conversations().Append(emp.Username, emp.Department,
		Entry{Type: "user", Content: req.Query, Timestamp: now},
		Entry{Type: "bot", Content: result.Response, Timestamp: now, Sources: result.Sources},
	)

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ResetChat clears all stored conversation transcripts.
func (h *Handler) ResetChat(w http.ResponseWriter, r *http.Request) {
	h.sys.Conversations().Reset()
	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Chat history reset",
	})
}
