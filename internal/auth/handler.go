package auth

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mckinzey/atrium/pkg/handlers"
	"github.com/mckinzey/atrium/pkg/pagination"
	"github.com/mckinzey/atrium/pkg/routes"
)

// Handler provides HTTP endpoints for authentication and the employee
// directory.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "auth"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for auth endpoints. Login is
// open; the rest require a session.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "GET", Pattern: "/user", Handler: RequireSession(h.sys, h.CurrentUser)},
			{Method: "GET", Pattern: "/employees", Handler: RequireSession(h.sys, RequireAdmin(h.ListEmployees))},
		},
	}
}

// Login authenticates a browser form submission. On success it sets the
// session cookie and redirects to the chat page; on failure it redirects
// back to the login page with an error message.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectLogin(w, r, "Invalid login request")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := strings.TrimSpace(r.PostFormValue("password"))
	if username == "" || password == "" {
		h.redirectLogin(w, r, "Username and password are required")
		return
	}

	_, session, err := h.sys.Authenticate(r.Context(), username, password)
	if err != nil {
		h.redirectLogin(w, r, "Invalid username or password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// CurrentUser returns the authenticated employee.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, CurrentEmployee(r.Context()))
}

// ListEmployees returns a paginated employee directory for the admin
// dashboard.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) redirectLogin(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/login?error="+url.QueryEscape(message), http.StatusFound)
}
