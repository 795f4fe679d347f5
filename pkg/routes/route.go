package routes

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware = func(http.Handler) http.Handler

// Route binds an HTTP method and pattern to a handler.
// Use lists middleware applied to this route only.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	Use     []Middleware
}
