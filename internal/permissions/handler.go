package permissions

import (
	"log/slog"
	"net/http"

	"docuvault/pkg/handlers"
	"docuvault/pkg/middleware"
	"docuvault/pkg/routes"
)

// Handler provides HTTP endpoints for permission operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "permissions"),
	}
}

// Routes returns the route group definition for permission endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/permissions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/grant", Handler: h.Grant},
			{Method: "POST", Pattern: "/revoke", Handler: h.Revoke},
		},
	}
}

// Grant creates a permission row from a JSON payload.
func (h *Handler) Grant(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, middleware.ErrUnauthenticated)
		return
	}

	cmd, err := handlers.DecodeJSON[GrantCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Grant(r.Context(), principal, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

// Revoke removes the target user's permissions on a document.
func (h *Handler) Revoke(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, middleware.ErrUnauthenticated)
		return
	}

	cmd, err := handlers.DecodeJSON[RevokeCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	removed, err := h.sys.Revoke(r.Context(), principal, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]int{"removed": removed})
}
