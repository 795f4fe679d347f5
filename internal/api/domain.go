package api

import (
	"docuvault/internal/config"
	"docuvault/internal/documents"
	"docuvault/internal/downloads"
	"docuvault/internal/permissions"
	"docuvault/internal/search"
	"docuvault/internal/tags"
	"docuvault/internal/users"
	"docuvault/pkg/middleware"
	"docuvault/pkg/routes"
)

// Domain holds all domain systems that comprise the API, along with the
// authentication middleware derived from the user token verifier.
type Domain struct {
	Users       users.System
	Tags        tags.System
	Permissions permissions.System
	Documents   documents.System
	Downloads   downloads.System
	Search      search.System

	Authed routes.Middleware
	Admin  routes.Middleware
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	tokens := users.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDuration())
	linkTokens := downloads.NewLinkTokens(cfg.Auth.JWTSecret, cfg.Auth.DownloadLinkTTLDuration())

	usersSystem := users.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		tokens,
	)

	tagsSystem := tags.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	permissionsSystem := permissions.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	documentsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		tagsSystem,
		permissionsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	downloadsSystem := downloads.New(
		documentsSystem,
		runtime.Storage,
		linkTokens,
		runtime.Logger,
	)

	searchSystem := search.New(
		runtime.Database.Connection(),
		tagsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Users:       usersSystem,
		Tags:        tagsSystem,
		Permissions: permissionsSystem,
		Documents:   documentsSystem,
		Downloads:   downloadsSystem,
		Search:      searchSystem,
		Authed:      middleware.Authenticate(tokens),
		Admin:       middleware.RequireRole(string(users.RoleAdmin)),
	}
}
