package auth

import (
	"context"

	"github.com/mckinzey/atrium/pkg/pagination"
)

// System defines the public contract for auth domain operations.
type System interface {
	Handler() *Handler

	Authenticate(ctx context.Context, username, password string) (*Employee, *Session, error)
	FromToken(ctx context.Context, token string) (*Employee, error)
	Logout(ctx context.Context, token string) error

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Employee], error)
}
