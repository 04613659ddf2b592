package auth

import (
	"net/url"

	"github.com/mckinzey/atrium/pkg/query"
	"github.com/mckinzey/atrium/pkg/repository"
)

var projection = query.
	NewProjectionMap("employees").
	Project("employee_id", "EmployeeID").
	Project("username", "Username").
	Project("email", "Email").
	Project("first_name", "FirstName").
	Project("last_name", "LastName").
	Project("department", "Department").
	Project("position", "Position").
	Project("is_admin", "IsAdmin").
	Project("is_active", "IsActive").
	Project("created_at", "CreatedAt").
	Project("last_login", "LastLogin").
	Project("password_hash", "PasswordHash")

var defaultSort = query.SortField{
	Field:      "Username",
	Descending: false,
}

// Filters contains optional filtering criteria for employee queries.
// Nil fields are ignored.
type Filters struct {
	Department *string `json:"department,omitempty"`
	IsAdmin    *bool   `json:"is_admin,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Department", f.Department).
		WhereEquals("IsAdmin", f.IsAdmin)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if d := values.Get("department"); d != "" {
		f.Department = &d
	}

	if a := values.Get("is_admin"); a != "" {
		admin := a == "true"
		f.IsAdmin = &admin
	}

	return f
}

func scanEmployee(s repository.Scanner) (Employee, error) {
	var e Employee
	err := s.Scan(
		&e.EmployeeID,
		&e.Username,
		&e.Email,
		&e.FirstName,
		&e.LastName,
		&e.Department,
		&e.Position,
		&e.IsAdmin,
		&e.IsActive,
		&e.CreatedAt,
		&e.LastLogin,
		&e.passwordHash,
	)
	return e, err
}

func scanSession(s repository.Scanner) (Session, error) {
	var sess Session
	err := s.Scan(
		&sess.Token,
		&sess.EmployeeID,
		&sess.CreatedAt,
		&sess.ExpiresAt,
	)
	return sess, err
}
