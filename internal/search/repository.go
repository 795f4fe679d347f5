package search

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"docuvault/internal/documents"
	"docuvault/pkg/pagination"
	"docuvault/pkg/query"
	"docuvault/pkg/repository"
)

type repo struct {
	db         *sql.DB
	tags       TagFinder
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a search repository implementing the System interface.
func New(
	db *sql.DB,
	tagFinder TagFinder,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		tags:       tagFinder,
		logger:     logger.With("system", "search"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Documents(
	ctx context.Context,
	filters Filters,
	page pagination.PageRequest,
) (*pagination.PageResult[documents.Document], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort).Distinct()
	filters.Apply(qb)

	if len(filters.TagNames) > 0 {
		matched, err := r.tags.FindByNames(ctx, filters.TagNames)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			return nil, ErrNoMatchingTags
		}

		ids := make([]any, len(matched))
		for i, t := range matched {
			ids[i] = t.ID
		}
		qb.WhereIn("TagID", ids)
	}

	q, args := qb.Build()
	matches, err := repository.QueryMany(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	result, err := pagination.Paginate(matches, page.Page, page.PageSize)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func scanDocument(s repository.Scanner) (documents.Document, error) {
	var d documents.Document
	err := s.Scan(
		&d.ID,
		&d.FileName,
		&d.FileExtension,
		&d.Filepath,
		&d.OwnerID,
		&d.PageCount,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}
