package documents

import (
	"context"

	"github.com/google/uuid"

	"docuvault/internal/tags"
	"docuvault/pkg/pagination"
)

// TagResolver resolves tag names to tags, creating any that do not exist.
// tags.System satisfies this interface.
type TagResolver interface {
	GetOrCreate(ctx context.Context, names []string) ([]tags.Tag, error)
}

// OwnershipChecker reports whether a user holds an Owner permission on a
// document. permissions.System satisfies this interface.
type OwnershipChecker interface {
	IsOwner(ctx context.Context, documentID, userID uuid.UUID) (bool, error)
}

// System defines the public contract for document domain operations.
// Update and Delete are restricted to the document's owner; requester
// identifies the authenticated caller.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id uuid.UUID) (*DocumentWithTags, error)
	Create(ctx context.Context, cmd CreateCommand) (*DocumentWithTags, error)
	Update(ctx context.Context, requester, id uuid.UUID, cmd UpdateCommand) (*Document, error)
	Delete(ctx context.Context, requester, id uuid.UUID) error
}
