package users

import (
	"context"

	"github.com/google/uuid"

	"docuvault/pkg/pagination"
	"docuvault/pkg/routes"
)

// System defines the public contract for user domain operations.
type System interface {
	Handler(authed, admin routes.Middleware) *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[User], error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)
	Register(ctx context.Context, cmd RegisterCommand) (*User, error)
	Login(ctx context.Context, creds Credentials) (string, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
