package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"docuvault/pkg/middleware"
)

type fakeVerifier struct {
	principal middleware.Principal
	err       error
}

func (f fakeVerifier) Verify(token string) (middleware.Principal, error) {
	if f.err != nil {
		return middleware.Principal{}, f.err
	}
	return f.principal, nil
}

func TestAuthenticateMissingHeader(t *testing.T) {
	handler := middleware.Authenticate(fakeVerifier{})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run without credentials")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", "token-value"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(fakeVerifier{})(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Error("handler should not run")
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.header)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthenticateRejectedToken(t *testing.T) {
	handler := middleware.Authenticate(fakeVerifier{err: middleware.ErrUnauthenticated})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateStoresPrincipal(t *testing.T) {
	want := middleware.Principal{
		ID:       uuid.New(),
		Username: "reader",
		Role:     "User",
	}

	var got middleware.Principal
	var found bool

	handler := middleware.Authenticate(fakeVerifier{principal: want})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, found = middleware.PrincipalFrom(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !found {
		t.Fatal("principal missing from request context")
	}
	if got != want {
		t.Errorf("principal = %+v, want %+v", got, want)
	}
}

func TestRequireRole(t *testing.T) {
	principal := middleware.Principal{ID: uuid.New(), Username: "u", Role: "User"}

	tests := []struct {
		name     string
		required string
		want     int
	}{
		{"matching role", "User", http.StatusOK},
		{"insufficient role", "Admin", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(fakeVerifier{principal: principal})(
				middleware.RequireRole(tt.required)(
					http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
				),
			)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer token")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireRoleWithoutPrincipal(t *testing.T) {
	handler := middleware.RequireRole("Admin")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not run")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
