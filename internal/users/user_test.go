package users_test

import (
	"errors"
	"testing"

	"docuvault/internal/users"
)

func validRegister() users.RegisterCommand {
	return users.RegisterCommand{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "correct-horse",
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"Admin", "User"} {
		role, err := users.ParseRole(valid)
		if err != nil {
			t.Errorf("ParseRole(%q) failed: %v", valid, err)
		}
		if string(role) != valid {
			t.Errorf("ParseRole(%q) = %q", valid, role)
		}
	}

	for _, invalid := range []string{"", "admin", "Root"} {
		if _, err := users.ParseRole(invalid); !errors.Is(err, users.ErrInvalidUser) {
			t.Errorf("ParseRole(%q) error = %v, want ErrInvalidUser", invalid, err)
		}
	}
}

func TestRegisterCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*users.RegisterCommand)
		wantErr bool
	}{
		{"valid", func(c *users.RegisterCommand) {}, false},
		{"valid with role", func(c *users.RegisterCommand) { c.Role = "Admin" }, false},
		{"blank username", func(c *users.RegisterCommand) { c.Username = "  " }, true},
		{"email without at sign", func(c *users.RegisterCommand) { c.Email = "nope" }, true},
		{"short password", func(c *users.RegisterCommand) { c.Password = "short" }, true},
		{"unknown role", func(c *users.RegisterCommand) { c.Role = "Root" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validRegister()
			tt.mutate(&cmd)

			err := cmd.Validate()
			if tt.wantErr && !errors.Is(err, users.ErrInvalidUser) {
				t.Errorf("error = %v, want ErrInvalidUser", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateCommandValidate(t *testing.T) {
	blank := "  "
	short := "short"
	badEmail := "not-an-email"
	valid := "renamed"

	tests := []struct {
		name    string
		cmd     users.UpdateCommand
		wantErr bool
	}{
		{"empty update", users.UpdateCommand{}, false},
		{"valid username", users.UpdateCommand{Username: &valid}, false},
		{"blank username", users.UpdateCommand{Username: &blank}, true},
		{"invalid email", users.UpdateCommand{Email: &badEmail}, true},
		{"short password", users.UpdateCommand{Password: &short}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && !errors.Is(err, users.ErrInvalidUser) {
				t.Errorf("error = %v, want ErrInvalidUser", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
