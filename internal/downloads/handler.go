package downloads

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"docuvault/internal/documents"
	"docuvault/pkg/handlers"
	"docuvault/pkg/routes"
)

// Handler provides HTTP endpoints for download link operations. Generated
// links are rooted at basePath, matching where the API module is mounted.
type Handler struct {
	sys      System
	logger   *slog.Logger
	authed   routes.Middleware
	basePath string
}

// NewHandler creates a Handler with the given system, logger, auth
// middleware, and API base path.
func NewHandler(sys System, logger *slog.Logger, authed routes.Middleware, basePath string) *Handler {
	return &Handler{
		sys:      sys,
		logger:   logger.With("handler", "downloads"),
		authed:   authed,
		basePath: basePath,
	}
}

// Routes returns the route group definition for download endpoints.
// Link generation requires authentication; the download itself does not,
// since the signed token is the credential.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/downloads",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{documentId}/link", Handler: h.GenerateLink, Use: []routes.Middleware{h.authed}},
			{Method: "GET", Pattern: "/{documentId}", Handler: h.Download},
		},
	}
}

// GenerateLink issues a signed download URL for a document.
func (h *Handler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("documentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, documents.ErrInvalidDocument)
		return
	}

	token, err := h.sys.CreateToken(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	link := fmt.Sprintf(
		"%s://%s%s/downloads/%s?token=%s",
		requestScheme(r), r.Host, h.basePath, id, token,
	)

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"link": link})
}

// Download streams a document's bytes after validating the token query
// parameter against the requested document.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("documentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, documents.ErrInvalidDocument)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		handlers.RespondError(w, h.logger, http.StatusForbidden, ErrInvalidToken)
		return
	}

	doc, reader, err := h.sys.Open(r.Context(), id, token)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer reader.Close()

	filename := doc.FileName + "." + doc.FileExtension

	w.Header().Set("Content-Type", contentTypeFor(doc.FileExtension))
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filename),
	)

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("download stream interrupted", "document_id", id, "error", err)
	}
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func contentTypeFor(extension string) string {
	if ct := mime.TypeByExtension("." + extension); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
