package api

import (
	"net/http"

	"docuvault/internal/config"
	"docuvault/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	authed := []routes.Middleware{domain.Authed}

	documentsGroup := domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes()
	documentsGroup.Use = authed

	tagsGroup := domain.Tags.Handler().Routes()
	tagsGroup.Use = authed

	permissionsGroup := domain.Permissions.Handler().Routes()
	permissionsGroup.Use = authed

	searchGroup := domain.Search.Handler().Routes()
	searchGroup.Use = authed

	routes.Register(
		mux,
		domain.Users.Handler(domain.Authed, domain.Admin).Routes(),
		documentsGroup,
		tagsGroup,
		permissionsGroup,
		domain.Downloads.Handler(domain.Authed, cfg.API.BasePath).Routes(),
		searchGroup,
	)
}
