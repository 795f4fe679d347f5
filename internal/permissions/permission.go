// Package permissions implements document access control for docuvault.
// Each permission row grants a user one access level on one document;
// granting and revoking is restricted to administrators and document owners.
package permissions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docuvault/internal/users"
	"docuvault/pkg/middleware"
)

// Type classifies the access level a permission grants.
type Type string

// Supported permission types.
const (
	TypeOwner  Type = "Owner"
	TypeEditor Type = "Editor"
	TypeViewer Type = "Viewer"
)

// ParseType validates and converts a string into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeOwner, TypeEditor, TypeViewer:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: unknown permission type %q", ErrInvalidPermission, s)
	}
}

// Permission represents a single access grant on a document.
type Permission struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	UserID     uuid.UUID `json:"user_id"`
	Type       Type      `json:"permission_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GrantCommand carries the data needed to grant document access.
type GrantCommand struct {
	DocumentID     uuid.UUID `json:"document_id"`
	UserID         uuid.UUID `json:"user_id"`
	PermissionType string    `json:"permission_type"`
}

// Validate checks the command fields against permission constraints.
func (c GrantCommand) Validate() error {
	if c.DocumentID == uuid.Nil {
		return fmt.Errorf("%w: document_id required", ErrInvalidPermission)
	}
	if c.UserID == uuid.Nil {
		return fmt.Errorf("%w: user_id required", ErrInvalidPermission)
	}
	if _, err := ParseType(c.PermissionType); err != nil {
		return err
	}
	return nil
}

// RevokeCommand carries the data needed to revoke document access.
// Revocation removes every permission the user holds on the document.
type RevokeCommand struct {
	DocumentID uuid.UUID `json:"document_id"`
	UserID     uuid.UUID `json:"user_id"`
}

// Validate checks the command fields against permission constraints.
func (c RevokeCommand) Validate() error {
	if c.DocumentID == uuid.Nil {
		return fmt.Errorf("%w: document_id required", ErrInvalidPermission)
	}
	if c.UserID == uuid.Nil {
		return fmt.Errorf("%w: user_id required", ErrInvalidPermission)
	}
	return nil
}

// OwnershipChecker reports whether a user holds an Owner permission on a document.
type OwnershipChecker interface {
	IsOwner(ctx context.Context, documentID, userID uuid.UUID) (bool, error)
}

// CanManage decides whether a principal may grant or revoke access to a
// document. Administrators always may; everyone else must hold an Owner
// permission on the document.
func CanManage(
	ctx context.Context,
	checker OwnershipChecker,
	principal middleware.Principal,
	documentID uuid.UUID,
) (bool, error) {
	if principal.Role == string(users.RoleAdmin) {
		return true, nil
	}
	return checker.IsOwner(ctx, documentID, principal.ID)
}
