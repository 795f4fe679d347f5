// Package routes defines route groups registered against a net/http ServeMux.
package routes

import "net/http"

// Group organizes routes under a common prefix.
// Use lists middleware applied to every route in the group and its children.
type Group struct {
	Prefix   string
	Use      []Middleware
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", nil, group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, inherited []Middleware, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	chain := append(append([]Middleware{}, inherited...), group.Use...)

	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.Handle(pattern, wrap(route.Handler, append(chain, route.Use...)))
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, chain, child)
	}
}

// wrap applies middleware outermost-first, matching declaration order.
func wrap(handler http.Handler, chain []Middleware) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}
	return handler
}
