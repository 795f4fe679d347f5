package search

import (
	"context"

	"docuvault/internal/documents"
	"docuvault/internal/tags"
	"docuvault/pkg/pagination"
)

// TagFinder returns only the tags whose names already exist.
// tags.System satisfies this interface.
type TagFinder interface {
	FindByNames(ctx context.Context, names []string) ([]tags.Tag, error)
}

// System defines the public contract for document search.
type System interface {
	Handler() *Handler

	// Documents returns the page of documents matching the filters.
	// Supplying tag names that resolve to no known tags is a failure,
	// not an empty result.
	Documents(
		ctx context.Context,
		filters Filters,
		page pagination.PageRequest,
	) (*pagination.PageResult[documents.Document], error)
}
