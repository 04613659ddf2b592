// Package auth implements the employee directory and session domain for
// Atrium. Employees and sessions live in the embedded SQLite store; session
// validity is an explicit expiry timestamp comparison.
package auth

import "time"

// SessionCookie is the name of the HTTP session cookie.
const SessionCookie = "session_token"

// Employee represents a directory entry. PasswordHash never leaves the
// package.
type Employee struct {
	EmployeeID string     `json:"employee_id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	IsAdmin    bool       `json:"is_admin"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login"`

	passwordHash string
}

// Session binds a token to an employee until its expiry.
type Session struct {
	Token      string    `json:"-"`
	EmployeeID string    `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given
// instant.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
