package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"docuvault/pkg/pagination"
	"docuvault/pkg/query"
	"docuvault/pkg/repository"
	"docuvault/pkg/routes"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	tokens     *Tokens
}

// New creates a user repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	tokens *Tokens,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "users"),
		pagination: pagination,
		tokens:     tokens,
	}
}

func (r *repo) Handler(authed, admin routes.Middleware) *Handler {
	return NewHandler(r, r.logger, r.pagination, authed, admin)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Username", "Email")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	accounts, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanUser)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	result := pagination.NewPageResult(accounts, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	role := Role(cmd.Role)
	if role == "" {
		role = RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := `
		INSERT INTO users(id, username, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password, role, created_at, updated_at`

	insertArgs := []any{uuid.New(), cmd.Username, cmd.Email, string(hash), role}

	u, err := repository.QueryOne(ctx, r.db, q, insertArgs, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID, "username", u.Username)
	return &u, nil
}

func (r *repo) Login(ctx context.Context, creds Credentials) (string, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Username", creds.Username)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		// Missing users and bad passwords are indistinguishable to the caller.
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(creds.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := r.tokens.Issue(&u)
	if err != nil {
		return "", err
	}

	r.logger.Info("user logged in", "id", u.ID, "username", u.Username)
	return token, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	username := existing.Username
	if cmd.Username != nil {
		username = *cmd.Username
	}

	email := existing.Email
	if cmd.Email != nil {
		email = *cmd.Email
	}

	password := existing.Password
	if cmd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		password = string(hash)
	}

	role := existing.Role
	if cmd.Role != nil {
		role = Role(*cmd.Role)
	}

	q := `
		UPDATE users
		SET username = $1, email = $2, password = $3, role = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, username, email, password, role, created_at, updated_at`

	updateArgs := []any{username, email, password, role, id}

	u, err := repository.QueryOne(ctx, r.db, q, updateArgs, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user updated", "id", u.ID)
	return &u, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user deleted", "id", id)
	return nil
}
