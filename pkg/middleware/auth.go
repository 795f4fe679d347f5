package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"docuvault/pkg/handlers"
)

// Principal identifies the authenticated caller of a request.
type Principal struct {
	ID       uuid.UUID
	Username string
	Role     string
}

// TokenVerifier validates a bearer token and resolves its principal.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

type principalKey struct{}

var (
	// ErrUnauthenticated indicates a missing or malformed Authorization header.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbiddenRole indicates the caller lacks the required role.
	ErrForbiddenRole = errors.New("insufficient role")
)

// Authenticate returns middleware that requires a valid bearer token and
// stores the resolved Principal on the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondAuthError(w, http.StatusUnauthorized, ErrUnauthenticated)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				respondAuthError(w, http.StatusUnauthorized, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole returns middleware that rejects authenticated requests whose
// principal does not hold the given role. Must run after Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok {
				respondAuthError(w, http.StatusUnauthorized, ErrUnauthenticated)
				return
			}
			if principal.Role != role {
				respondAuthError(w, http.StatusForbidden, ErrForbiddenRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithPrincipal returns a copy of ctx carrying the given principal.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFrom extracts the authenticated principal from a request context.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(Principal)
	return principal, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func respondAuthError(w http.ResponseWriter, status int, err error) {
	handlers.RespondJSON(w, status, map[string]string{"error": err.Error()})
}
