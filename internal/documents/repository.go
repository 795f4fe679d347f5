package documents

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"docuvault/internal/tags"
	"docuvault/pkg/pagination"
	"docuvault/pkg/query"
	"docuvault/pkg/repository"
	"docuvault/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	tags       TagResolver
	ownership  OwnershipChecker
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	tagResolver TagResolver,
	ownership OwnershipChecker,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		tags:       tagResolver,
		ownership:  ownership,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "FileName", "FileExtension")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*DocumentWithTags, error) {
	doc, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved, err := r.tagsFor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DocumentWithTags{Document: *doc, Tags: resolved}, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*DocumentWithTags, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	key := buildStorageKey(cmd.FileName, cmd.FileExtension)

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("store document file: %w", err)
	}

	// Tag upserts are idempotent, so resolving them outside the transaction
	// cannot leave the document in an inconsistent state.
	resolved, err := r.tags.GetOrCreate(ctx, cmd.TagNames)
	if err != nil {
		r.compensateStoredFile(ctx, key)
		return nil, err
	}

	q := `
		INSERT INTO documents(id, file_name, file_extension, filepath, user_id, page_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, file_name, file_extension, filepath, user_id, page_count, created_at, updated_at`

	insertArgs := []any{
		uuid.New(),
		cmd.FileName,
		cmd.FileExtension,
		key,
		cmd.OwnerID,
		cmd.PageCount,
	}

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		d, err := repository.QueryOne(ctx, tx, q, insertArgs, scanDocument)
		if err != nil {
			return d, err
		}

		for _, t := range resolved {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO document_tags(document_id, tag_id)
				 VALUES ($1, $2)
				 ON CONFLICT DO NOTHING`,
				d.ID, t.ID,
			); err != nil {
				return d, fmt.Errorf("link tag %q: %w", t.Name, err)
			}
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO permissions(id, document_id, user_id, permission_type)
			 VALUES ($1, $2, $3, 'Owner')`,
			uuid.New(), d.ID, cmd.OwnerID,
		); err != nil {
			return d, fmt.Errorf("assign owner permission: %w", err)
		}

		return d, nil
	})

	if err != nil {
		r.compensateStoredFile(ctx, key)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"document created",
		"id", doc.ID,
		"filepath", doc.Filepath,
		"owner", doc.OwnerID,
	)
	return &DocumentWithTags{Document: doc, Tags: resolved}, nil
}

func (r *repo) Update(
	ctx context.Context,
	requester, id uuid.UUID,
	cmd UpdateCommand,
) (*Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := r.ownership.IsOwner(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, ErrUpdateForbidden
	}

	fileName := existing.FileName
	if cmd.FileName != nil {
		fileName = *cmd.FileName
	}

	fileExtension := existing.FileExtension
	if cmd.FileExtension != nil {
		fileExtension = *cmd.FileExtension
	}

	newKey := buildStorageKey(fileName, fileExtension)
	moved := false

	if newKey != existing.Filepath {
		if err := r.storage.Move(ctx, existing.Filepath, newKey); err != nil {
			return nil, fmt.Errorf("move stored file: %w", err)
		}
		moved = true
	}

	q := `
		UPDATE documents
		SET file_name = $1, file_extension = $2, filepath = $3, updated_at = now()
		WHERE id = $4
		RETURNING id, file_name, file_extension, filepath, user_id, page_count, created_at, updated_at`

	updateArgs := []any{fileName, fileExtension, newKey, id}

	doc, err := repository.QueryOne(ctx, r.db, q, updateArgs, scanDocument)
	if err != nil {
		if moved {
			if mvErr := r.storage.Move(ctx, newKey, existing.Filepath); mvErr != nil {
				r.logger.Warn(
					"compensating file move failed",
					"from", newKey,
					"to", existing.Filepath,
					"error", mvErr,
				)
			}
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document updated", "id", doc.ID, "filepath", doc.Filepath)
	return &doc, nil
}

func (r *repo) Delete(ctx context.Context, requester, id uuid.UUID) error {
	existing, err := r.findRow(ctx, id)
	if err != nil {
		return err
	}

	owner, err := r.ownership.IsOwner(ctx, id, requester)
	if err != nil {
		return err
	}
	if !owner {
		return ErrDeleteForbidden
	}

	err = repository.ExecExpectOne(ctx, r.db, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, existing.Filepath); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("remove stored file: %w", err)
		}
	}

	r.logger.Info("document deleted", "id", id, "filepath", existing.Filepath)
	return nil
}

func (r *repo) findRow(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) tagsFor(ctx context.Context, id uuid.UUID) ([]tags.Tag, error) {
	q := `
		SELECT t.id, t.name, t.created_at, t.updated_at
		FROM tags t
		JOIN document_tags dt ON dt.tag_id = t.id
		WHERE dt.document_id = $1
		ORDER BY t.name ASC`

	resolved, err := repository.QueryMany(
		ctx, r.db, q, []any{id},
		func(s repository.Scanner) (tags.Tag, error) {
			var t tags.Tag
			err := s.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
			return t, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("query document tags: %w", err)
	}
	return resolved, nil
}

func (r *repo) compensateStoredFile(ctx context.Context, key string) {
	if err := r.storage.Delete(ctx, key); err != nil {
		r.logger.Warn("compensating file delete failed", "key", key, "error", err)
	}
}
