package tags

import (
	"context"

	"github.com/google/uuid"

	"docuvault/pkg/pagination"
)

// System defines the public contract for tag domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Tag], error)
	All(ctx context.Context) ([]Tag, error)
	Find(ctx context.Context, id uuid.UUID) (*Tag, error)
	Create(ctx context.Context, cmd Command) (*Tag, error)
	Update(ctx context.Context, id uuid.UUID, cmd Command) (*Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// GetOrCreate resolves tag names to tags, creating any that do not
	// exist. Creation of missing tags runs concurrently.
	GetOrCreate(ctx context.Context, names []string) ([]Tag, error)

	// FindByNames returns only the tags whose names already exist.
	FindByNames(ctx context.Context, names []string) ([]Tag, error)
}
