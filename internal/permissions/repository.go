package permissions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"docuvault/pkg/middleware"
	"docuvault/pkg/query"
	"docuvault/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a permission repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "permissions"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) IsOwner(ctx context.Context, documentID, userID uuid.UUID) (bool, error) {
	q := `
		SELECT EXISTS(
			SELECT 1 FROM permissions
			WHERE document_id = $1 AND user_id = $2 AND permission_type = $3
		)`

	var owner bool
	err := r.db.QueryRowContext(ctx, q, documentID, userID, TypeOwner).Scan(&owner)
	if err != nil {
		return false, fmt.Errorf("check document ownership: %w", err)
	}
	return owner, nil
}

func (r *repo) Grant(
	ctx context.Context,
	requester middleware.Principal,
	cmd GrantCommand,
) (*Permission, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	allowed, err := CanManage(ctx, r, requester, cmd.DocumentID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrGrantForbidden
	}

	q := `
		INSERT INTO permissions(id, document_id, user_id, permission_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, document_id, user_id, permission_type, created_at, updated_at`

	insertArgs := []any{uuid.New(), cmd.DocumentID, cmd.UserID, Type(cmd.PermissionType)}

	p, err := repository.QueryOne(ctx, r.db, q, insertArgs, scanPermission)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"permission granted",
		"document_id", p.DocumentID,
		"user_id", p.UserID,
		"type", p.Type,
	)
	return &p, nil
}

func (r *repo) Revoke(
	ctx context.Context,
	requester middleware.Principal,
	cmd RevokeCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	allowed, err := CanManage(ctx, r, requester, cmd.DocumentID)
	if err != nil {
		return 0, err
	}
	if !allowed {
		return 0, ErrRevokeForbidden
	}

	result, err := r.db.ExecContext(
		ctx,
		"DELETE FROM permissions WHERE document_id = $1 AND user_id = $2",
		cmd.DocumentID, cmd.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("revoke permissions: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("revoke permissions: %w", err)
	}

	r.logger.Info(
		"permissions revoked",
		"document_id", cmd.DocumentID,
		"user_id", cmd.UserID,
		"removed", removed,
	)
	return int(removed), nil
}

func (r *repo) ForDocument(ctx context.Context, documentID uuid.UUID) ([]Permission, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("DocumentID", documentID).
		Build()

	results, err := repository.QueryMany(ctx, r.db, q, args, scanPermission)
	if err != nil {
		return nil, fmt.Errorf("query document permissions: %w", err)
	}
	return results, nil
}
