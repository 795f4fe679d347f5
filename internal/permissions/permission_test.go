package permissions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"docuvault/internal/permissions"
	"docuvault/pkg/middleware"
)

func TestParseType(t *testing.T) {
	for _, valid := range []string{"Owner", "Editor", "Viewer"} {
		typ, err := permissions.ParseType(valid)
		if err != nil {
			t.Errorf("ParseType(%q) failed: %v", valid, err)
		}
		if string(typ) != valid {
			t.Errorf("ParseType(%q) = %q", valid, typ)
		}
	}

	for _, invalid := range []string{"", "owner", "Manager"} {
		if _, err := permissions.ParseType(invalid); !errors.Is(err, permissions.ErrInvalidPermission) {
			t.Errorf("ParseType(%q) error = %v, want ErrInvalidPermission", invalid, err)
		}
	}
}

func TestGrantCommandValidate(t *testing.T) {
	docID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name    string
		cmd     permissions.GrantCommand
		wantErr bool
	}{
		{
			"valid",
			permissions.GrantCommand{DocumentID: docID, UserID: userID, PermissionType: "Viewer"},
			false,
		},
		{
			"missing document",
			permissions.GrantCommand{UserID: userID, PermissionType: "Viewer"},
			true,
		},
		{
			"missing user",
			permissions.GrantCommand{DocumentID: docID, PermissionType: "Viewer"},
			true,
		},
		{
			"unknown type",
			permissions.GrantCommand{DocumentID: docID, UserID: userID, PermissionType: "Manager"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && !errors.Is(err, permissions.ErrInvalidPermission) {
				t.Errorf("error = %v, want ErrInvalidPermission", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRevokeCommandValidate(t *testing.T) {
	cmd := permissions.RevokeCommand{DocumentID: uuid.New(), UserID: uuid.New()}
	if err := cmd.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missing := permissions.RevokeCommand{UserID: uuid.New()}
	if err := missing.Validate(); !errors.Is(err, permissions.ErrInvalidPermission) {
		t.Errorf("error = %v, want ErrInvalidPermission", err)
	}
}

type fakeOwnership struct {
	owner uuid.UUID
	err   error
}

func (f fakeOwnership) IsOwner(_ context.Context, _, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return userID == f.owner, nil
}

func TestCanManage(t *testing.T) {
	docID := uuid.New()
	owner := uuid.New()
	checker := fakeOwnership{owner: owner}

	tests := []struct {
		name      string
		principal middleware.Principal
		want      bool
	}{
		{"admin always manages", middleware.Principal{ID: uuid.New(), Role: "Admin"}, true},
		{"owner manages", middleware.Principal{ID: owner, Role: "User"}, true},
		{"other user denied", middleware.Principal{ID: uuid.New(), Role: "User"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := permissions.CanManage(context.Background(), checker, tt.principal, docID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanManage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanManagePropagatesCheckerError(t *testing.T) {
	failed := errors.New("query failed")
	checker := fakeOwnership{err: failed}
	principal := middleware.Principal{ID: uuid.New(), Role: "User"}

	if _, err := permissions.CanManage(context.Background(), checker, principal, uuid.New()); !errors.Is(err, failed) {
		t.Errorf("error = %v, want %v", err, failed)
	}
}
