package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/newshub/newshub-api/internal/store"
)

// PostgreSQL error codes.
const (
	// invalidTextRepresentationCode (22P02) is raised when a literal
	// cannot be parsed as its column type, e.g. non-numeric text bound
	// against an integer id.
	invalidTextRepresentationCode = "22P02"

	// foreignKeyViolationCode (23503) is raised when an insert or delete
	// would break referential integrity. The stores check references
	// up front, so hitting this means a row vanished between the check
	// and the mutation.
	foreignKeyViolationCode = "23503"

	// uniqueViolationCode (23505) is raised on duplicate values in a
	// unique column.
	uniqueViolationCode = "23505"
)

// MapError translates a database error into the store taxonomy. Errors
// with no mapping are returned unchanged so they surface as internal
// failures rather than being masked.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrNotFound, pgErr.ConstraintName, err)
		}
	}

	return err
}

// IsInvalidTextRepresentation checks for a 22P02, the database's own
// report of a malformed input literal.
func IsInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentationCode
}

// IsForeignKeyViolation checks for a 23503.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// IsUniqueViolation checks for a 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CheckRowsAffected inspects the result of an UPDATE or DELETE and
// returns notFoundErr when no row was touched.
func CheckRowsAffected(result sql.Result, notFoundErr error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFoundErr
	}
	return nil
}
