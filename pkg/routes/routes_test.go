package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"docuvault/pkg/routes"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func tagging(header, value string) routes.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(header, value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRegisterPatterns(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/items",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: okHandler},
			{Method: "GET", Pattern: "/{id}", Handler: okHandler},
		},
	})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/items", http.StatusOK},
		{"GET", "/items/42", http.StatusOK},
		{"POST", "/items", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		if rec.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

func TestGroupMiddlewareAppliesToAllRoutes(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/items",
		Use:    []routes.Middleware{tagging("X-Group", "yes")},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: okHandler},
			{Method: "GET", Pattern: "/{id}", Handler: okHandler, Use: []routes.Middleware{tagging("X-Route", "yes")}},
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/items", nil))
	if rec.Header().Get("X-Group") != "yes" {
		t.Error("group middleware missing on bare route")
	}
	if rec.Header().Get("X-Route") != "" {
		t.Error("route middleware leaked onto sibling route")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/items/1", nil))
	if rec.Header().Get("X-Group") != "yes" || rec.Header().Get("X-Route") != "yes" {
		t.Error("group and route middleware should both apply")
	}
}

func TestNestedGroupInheritsMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/api",
		Use:    []routes.Middleware{tagging("X-Parent", "yes")},
		Children: []routes.Group{
			{
				Prefix: "/items",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: okHandler},
				},
			},
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/items", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Parent") != "yes" {
		t.Error("nested group should inherit parent middleware")
	}
}
