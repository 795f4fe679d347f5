package downloads

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"docuvault/internal/documents"
	"docuvault/pkg/routes"
	"docuvault/pkg/storage"
)

type service struct {
	docs    DocumentFinder
	storage storage.System
	tokens  *LinkTokens
	logger  *slog.Logger
}

// New creates a download service implementing the System interface.
func New(
	docs DocumentFinder,
	store storage.System,
	tokens *LinkTokens,
	logger *slog.Logger,
) System {
	return &service{
		docs:    docs,
		storage: store,
		tokens:  tokens,
		logger:  logger.With("system", "downloads"),
	}
}

func (s *service) Handler(authed routes.Middleware, basePath string) *Handler {
	return NewHandler(s, s.logger, authed, basePath)
}

func (s *service) CreateToken(ctx context.Context, documentID uuid.UUID) (string, error) {
	if _, err := s.docs.Find(ctx, documentID); err != nil {
		return "", err
	}

	token, err := s.tokens.Sign(documentID)
	if err != nil {
		return "", err
	}

	s.logger.Info("download link issued", "document_id", documentID)
	return token, nil
}

func (s *service) Open(
	ctx context.Context,
	documentID uuid.UUID,
	token string,
) (*documents.Document, io.ReadCloser, error) {
	if err := s.tokens.Verify(token, documentID); err != nil {
		return nil, nil, err
	}

	doc, err := s.docs.Find(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.Download(ctx, doc.Filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("open stored file: %w", err)
	}

	return &doc.Document, reader, nil
}
