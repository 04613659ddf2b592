package analytics

import (
	"log/slog"
	"net/http"

	"github.com/mckinzey/atrium/pkg/handlers"
	"github.com/mckinzey/atrium/pkg/routes"
)

// Handler provides HTTP endpoints for analytics reporting.
type Handler struct {
	ledger *Ledger
	logger *slog.Logger
}

// NewHandler creates a Handler backed by the given ledger.
func NewHandler(ledger *Ledger, logger *slog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger.With("handler", "analytics"),
	}
}

// Routes returns the route group definition for analytics endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analytics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Snapshot},
		},
	}
}

// Snapshot returns the current usage statistics.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.ledger.Snapshot())
}
