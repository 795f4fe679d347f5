package users_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"docuvault/internal/users"
	"docuvault/pkg/middleware"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := users.NewTokens("test-secret", time.Minute)

	user := &users.User{
		ID:       uuid.New(),
		Username: "jdoe",
		Role:     users.RoleAdmin,
	}

	signed, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	principal, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if principal.ID != user.ID {
		t.Errorf("principal ID = %s, want %s", principal.ID, user.ID)
	}
	if principal.Username != user.Username {
		t.Errorf("principal username = %q, want %q", principal.Username, user.Username)
	}
	if principal.Role != string(users.RoleAdmin) {
		t.Errorf("principal role = %q, want %q", principal.Role, users.RoleAdmin)
	}
}

func TestTokensRejectsExpired(t *testing.T) {
	tokens := users.NewTokens("test-secret", -time.Minute)

	signed, err := tokens.Issue(&users.User{ID: uuid.New(), Username: "jdoe", Role: users.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := tokens.Verify(signed); !errors.Is(err, middleware.ErrUnauthenticated) {
		t.Errorf("error = %v, want ErrUnauthenticated", err)
	}
}

func TestTokensRejectsWrongSecret(t *testing.T) {
	issuer := users.NewTokens("issuer-secret", time.Minute)
	verifier := users.NewTokens("other-secret", time.Minute)

	signed, err := issuer.Issue(&users.User{ID: uuid.New(), Username: "jdoe", Role: users.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, middleware.ErrUnauthenticated) {
		t.Errorf("error = %v, want ErrUnauthenticated", err)
	}
}

func TestTokensRejectsMalformed(t *testing.T) {
	tokens := users.NewTokens("test-secret", time.Minute)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(token); !errors.Is(err, middleware.ErrUnauthenticated) {
			t.Errorf("Verify(%q) error = %v, want ErrUnauthenticated", token, err)
		}
	}
}
