package permissions

import (
	"context"

	"github.com/google/uuid"

	"docuvault/pkg/middleware"
)

// System defines the public contract for permission domain operations.
type System interface {
	OwnershipChecker

	Handler() *Handler

	// Grant creates a permission row after verifying the requester may
	// manage access to the document.
	Grant(ctx context.Context, requester middleware.Principal, cmd GrantCommand) (*Permission, error)

	// Revoke removes every permission the target user holds on the
	// document, returning the number of rows removed. Zero is a success.
	Revoke(ctx context.Context, requester middleware.Principal, cmd RevokeCommand) (int, error)

	// ForDocument lists the permission rows on a document.
	ForDocument(ctx context.Context, documentID uuid.UUID) ([]Permission, error)
}
