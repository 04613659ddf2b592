package auth

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mckinzey/atrium/pkg/pagination"
	"github.com/mckinzey/atrium/pkg/query"
	"github.com/mckinzey/atrium/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	sessionTTL time.Duration
	now        func() time.Time
}

// New creates an auth repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	sessionTTL time.Duration,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "auth"),
		pagination: pagination,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

// Authenticate verifies credentials and issues a session on success.
func (r *repo) Authenticate(ctx context.Context, username, password string) (*Employee, *Session, error) {
	emp, err := r.findByUsername(ctx, username)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !emp.IsActive || emp.passwordHash != HashPassword(password) {
		return nil, nil, ErrInvalidCredentials
	}

	now := r.now()
	session := &Session{
		Token:      uuid.NewString(),
		EmployeeID: emp.EmployeeID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(r.sessionTTL),
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx,
			"UPDATE employees SET last_login = ? WHERE employee_id = ?",
			now, emp.EmployeeID,
		); err != nil {
			return struct{}{}, fmt.Errorf("update last login: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO sessions(token, employee_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
			session.Token, session.EmployeeID, session.CreatedAt, session.ExpiresAt,
		); err != nil {
			return struct{}{}, fmt.Errorf("insert session: %w", err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	emp.LastLogin = &now

	r.logger.Info("employee logged in", "username", emp.Username, "department", emp.Department)
	return emp, session, nil
}

// FromToken resolves the employee bound to a session token. Expired
// sessions are deleted on discovery.
func (r *repo) FromToken(ctx context.Context, token string) (*Employee, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	sess, err := repository.QueryOne(ctx, r.db,
		"SELECT token, employee_id, created_at, expires_at FROM sessions WHERE token = ?",
		[]any{token}, scanSession,
	)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	if sess.Expired(r.now()) {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
			r.logger.Warn("expired session cleanup failed", "error", err)
		}
		return nil, ErrSessionExpired
	}

	emp, err := r.findByEmployeeID(ctx, sess.EmployeeID)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return emp, nil
}

// Logout invalidates a session token.
func (r *repo) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Employee], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Username", "Email", "FirstName", "LastName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	emps, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}

	result := pagination.NewPageResult(emps, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) findByUsername(ctx context.Context, username string) (*Employee, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Username", username)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEmployee)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) findByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	q, args := query.NewBuilder(projection).BuildSingle("EmployeeID", employeeID)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEmployee)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

// HashPassword returns the hex SHA-256 digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
