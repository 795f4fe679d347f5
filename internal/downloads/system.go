package downloads

import (
	"context"
	"io"

	"github.com/google/uuid"

	"docuvault/internal/documents"
	"docuvault/pkg/routes"
)

// DocumentFinder resolves a document and its tags by id.
// documents.System satisfies this interface.
type DocumentFinder interface {
	Find(ctx context.Context, id uuid.UUID) (*documents.DocumentWithTags, error)
}

// System defines the public contract for download link operations.
type System interface {
	Handler(authed routes.Middleware, basePath string) *Handler

	// CreateToken verifies the document exists and issues a signed
	// download token bound to it.
	CreateToken(ctx context.Context, documentID uuid.UUID) (string, error)

	// Open validates the token against the requested document and returns
	// the document metadata with a reader over the stored bytes. The caller
	// closes the reader.
	Open(ctx context.Context, documentID uuid.UUID, token string) (*documents.Document, io.ReadCloser, error)
}
