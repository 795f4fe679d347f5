package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL class 23 integrity violations worth discriminating. Unique
// violations back every duplicate username, email, and tag name response.
const pgUniqueViolation = "23505"

// MapError translates driver errors into the caller's domain sentinels:
// sql.ErrNoRows becomes notFoundErr and a unique constraint violation
// becomes duplicateErr. Anything else passes through for the handler to
// report as a server error.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return duplicateErr
	}

	return err
}
