package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mckinzey/atrium/internal/auth"
	"github.com/mckinzey/atrium/pkg/pagination"
)

type fakeAuth struct {
	employees map[string]*auth.Employee
}

func (f *fakeAuth) Handler() *auth.Handler { return nil }

func (f *fakeAuth) Authenticate(ctx context.Context, username, password string) (*auth.Employee, *auth.Session, error) {
	return nil, nil, auth.ErrInvalidCredentials
}

func (f *fakeAuth) FromToken(ctx context.Context, token string) (*auth.Employee, error) {
	emp, ok := f.employees[token]
	if !ok {
		return nil, auth.ErrNotAuthenticated
	}
	return emp, nil
}

func (f *fakeAuth) Logout(ctx context.Context, token string) error {
	delete(f.employees, token)
	return nil
}

func (f *fakeAuth) List(ctx context.Context, page pagination.PageRequest, filters auth.Filters) (*pagination.PageResult[auth.Employee], error) {
	return nil, nil
}

func sessionRequest(token string) *http.Request {
	req := httptest.NewRequest("GET", "/user", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}
	return req
}

func TestRequireSession(t *testing.T) {
	sys := &fakeAuth{employees: map[string]*auth.Employee{
		"valid-token": {Username: "john.doe", Department: "Engineering"},
	}}

	var seen *auth.Employee
	handler := auth.RequireSession(sys, func(w http.ResponseWriter, r *http.Request) {
		seen = auth.CurrentEmployee(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantUser   string
	}{
		{"valid session", "valid-token", http.StatusOK, "john.doe"},
		{"unknown token", "bogus", http.StatusUnauthorized, ""},
		{"missing cookie", "", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			rec := httptest.NewRecorder()
			handler(rec, sessionRequest(tt.token))

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantUser == "" && seen != nil {
				t.Errorf("handler ran for unauthenticated request")
			}
			if tt.wantUser != "" && (seen == nil || seen.Username != tt.wantUser) {
				t.Errorf("employee in context: got %v, want %s", seen, tt.wantUser)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := auth.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		emp        *auth.Employee
		wantStatus int
	}{
		{"admin", &auth.Employee{Username: "john.doe", IsAdmin: true}, http.StatusOK},
		{"non-admin", &auth.Employee{Username: "bob.wilson"}, http.StatusForbidden},
		{"no session", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/employees", nil)
			if tt.emp != nil {
				req = req.WithContext(auth.WithEmployee(req.Context(), tt.emp))
			}

			rec := httptest.NewRecorder()
			handler(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRedirectUnauthenticated(t *testing.T) {
	sys := &fakeAuth{employees: map[string]*auth.Employee{
		"valid-token": {Username: "john.doe"},
	}}

	handler := auth.RedirectUnauthenticated(sys, "/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("authenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, sessionRequest("valid-token"))
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, sessionRequest(""))
		if rec.Code != http.StatusFound {
			t.Fatalf("status: got %d, want 302", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("location: got %s, want /login", loc)
		}
	})
}

func TestHashPassword(t *testing.T) {
	// Known digest for the seeded demo credentials.
	want := "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f"
	if got := auth.HashPassword("password123"); got != want {
		t.Errorf("HashPassword: got %s, want %s", got, want)
	}

	if auth.HashPassword("a") == auth.HashPassword("b") {
		t.Error("distinct passwords should produce distinct digests")
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"past expiry", now.Add(-time.Hour), true},
		{"exact boundary", now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &auth.Session{ExpiresAt: tt.expiresAt}
			if got := s.Expired(now); got != tt.want {
				t.Errorf("Expired: got %v, want %v", got, tt.want)
			}
		})
	}
}
