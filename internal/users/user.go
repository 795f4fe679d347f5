// Package users implements the user domain for docuvault.
// It provides account registration, credential verification, token issuance,
// and administrative account management.
package users

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role classifies a user account's authorization level.
type Role string

// Supported account roles.
const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole validates and converts a string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidUser, s)
	}
}

// MinPasswordLength is the minimum plaintext password length accepted
// before hashing.
const MinPasswordLength = 8

// User represents a registered account. Password holds the bcrypt hash and
// is never serialized.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterCommand carries the data needed to create a new account.
// Role is optional and defaults to RoleUser.
type RegisterCommand struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Validate checks the command fields against account constraints.
func (c RegisterCommand) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("%w: username required", ErrInvalidUser)
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidUser)
	}
	if len(c.Password) < MinPasswordLength {
		return fmt.Errorf(
			"%w: password must be at least %d characters",
			ErrInvalidUser, MinPasswordLength,
		)
	}
	if c.Role != "" {
		if _, err := ParseRole(c.Role); err != nil {
			return err
		}
	}
	return nil
}

// UpdateCommand carries a partial account update. Nil fields are unchanged.
// A non-nil Password is re-hashed before persisting.
type UpdateCommand struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// Validate checks the provided fields against account constraints.
func (c UpdateCommand) Validate() error {
	if c.Username != nil && strings.TrimSpace(*c.Username) == "" {
		return fmt.Errorf("%w: username required", ErrInvalidUser)
	}
	if c.Email != nil && !strings.Contains(*c.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidUser)
	}
	if c.Password != nil && len(*c.Password) < MinPasswordLength {
		return fmt.Errorf(
			"%w: password must be at least %d characters",
			ErrInvalidUser, MinPasswordLength,
		)
	}
	if c.Role != nil {
		if _, err := ParseRole(*c.Role); err != nil {
			return err
		}
	}
	return nil
}

// Credentials carries a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
