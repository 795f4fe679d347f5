package tags

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"docuvault/pkg/pagination"
	"docuvault/pkg/query"
	"docuvault/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a tag repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "tags"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[Tag], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count tags: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTag)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}

	result := pagination.NewPageResult(results, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) All(ctx context.Context) ([]Tag, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	results, err := repository.QueryMany(ctx, r.db, q, args, scanTag)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	return results, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Tag, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTag)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Tag, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO tags(id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at`

	t, err := repository.QueryOne(
		ctx, r.db, q,
		[]any{uuid.New(), strings.TrimSpace(cmd.Name)},
		scanTag,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tag created", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd Command) (*Tag, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE tags
		SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at`

	t, err := repository.QueryOne(
		ctx, r.db, q,
		[]any{strings.TrimSpace(cmd.Name), id},
		scanTag,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tag updated", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db, "DELETE FROM tags WHERE id = $1", id)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tag deleted", "id", id)
	return nil
}

func (r *repo) FindByNames(ctx context.Context, names []string) ([]Tag, error) {
	names = normalizeNames(names)
	if len(names) == 0 {
		return []Tag{}, nil
	}

	values := make([]any, len(names))
	for i, name := range names {
		values[i] = name
	}

	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereIn("Name", values).
		Build()

	results, err := repository.QueryMany(ctx, r.db, q, args, scanTag)
	if err != nil {
		return nil, fmt.Errorf("query tags by name: %w", err)
	}
	return results, nil
}

func (r *repo) GetOrCreate(ctx context.Context, names []string) ([]Tag, error) {
	names = normalizeNames(names)
	if len(names) == 0 {
		return []Tag{}, nil
	}

	existing, err := r.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(existing))
	for _, t := range existing {
		found[t.Name] = true
	}

	// Upsert keeps concurrent creation of the same name race-free.
	q := `
		INSERT INTO tags(id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id, name, created_at, updated_at`

	results := existing
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		if found[name] {
			continue
		}

		g.Go(func() error {
			t, err := repository.QueryOne(gctx, r.db, q, []any{uuid.New(), name}, scanTag)
			if err != nil {
				return fmt.Errorf("create tag %q: %w", name, err)
			}

			mu.Lock()
			results = append(results, t)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

// normalizeNames trims, drops blanks, and dedupes while preserving order.
func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}

	return normalized
}
