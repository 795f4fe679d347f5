package search

import (
	"log/slog"
	"net/http"

	"docuvault/pkg/handlers"
	"docuvault/pkg/pagination"
	"docuvault/pkg/routes"
)

// Handler provides HTTP endpoints for document search.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "search"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for search endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/search",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/documents", Handler: h.Documents},
		},
	}
}

// Documents returns documents matching the query parameter criteria.
func (h *Handler) Documents(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.Documents(r.Context(), filters, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
