package auth

import (
	"context"
	"net/http"

	"github.com/mckinzey/atrium/pkg/handlers"
)

type contextKey struct{}

var employeeKey contextKey

// CurrentEmployee returns the authenticated employee stored in the request
// context by RequireSession, or nil when unauthenticated.
func CurrentEmployee(ctx context.Context) *Employee {
	emp, _ := ctx.Value(employeeKey).(*Employee)
	return emp
}

// WithEmployee returns a context carrying the given employee. Exposed for
// handler tests.
func WithEmployee(ctx context.Context, emp *Employee) context.Context {
	return context.WithValue(ctx, employeeKey, emp)
}

// RequireSession wraps an API handler: the session cookie is resolved to an
// employee and stored in the request context. Requests without a valid
// session receive a JSON 401. Applied per route so login stays open.
func RequireSession(sys System, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emp, err := authenticate(sys, r)
		if err != nil {
			handlers.RespondJSON(w, MapHTTPStatus(err), map[string]string{"error": err.Error()})
			return
		}
		next(w, r.WithContext(WithEmployee(r.Context(), emp)))
	}
}

// RequireAdmin gates a handler to admin employees. It must run inside
// RequireSession.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emp := CurrentEmployee(r.Context())
		if emp == nil {
			handlers.RespondJSON(w, http.StatusUnauthorized, map[string]string{"error": ErrNotAuthenticated.Error()})
			return
		}
		if !emp.IsAdmin {
			handlers.RespondJSON(w, http.StatusForbidden, map[string]string{"error": ErrForbidden.Error()})
			return
		}
		next(w, r)
	}
}

// RedirectUnauthenticated wraps a browser page handler: requests without a
// valid session are redirected to the login page instead of receiving a
// JSON 401.
func RedirectUnauthenticated(sys System, loginPath string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emp, err := authenticate(sys, r)
		if err != nil {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		next(w, r.WithContext(WithEmployee(r.Context(), emp)))
	}
}

func authenticate(sys System, r *http.Request) (*Employee, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return sys.FromToken(r.Context(), cookie.Value)
}
