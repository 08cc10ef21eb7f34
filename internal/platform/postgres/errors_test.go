package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub/newshub-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows maps to not found",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "wrapped no rows maps to not found",
			err:      fmt.Errorf("query failed: %w", sql.ErrNoRows),
			expected: store.ErrNotFound,
		},
		{
			name:     "invalid text representation maps to invalid input",
			err:      &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type integer"},
			expected: store.ErrInvalidInput,
		},
		{
			name:     "foreign key violation maps to not found",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "comments_article_id_fkey"},
			expected: store.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}
}

func TestMapErrorPassesUnknownErrorsThrough(t *testing.T) {
	t.Parallel()

	unknown := errors.New("connection reset by peer")
	assert.Equal(t, unknown, MapError(unknown))

	// A unique violation has no mapping here; duplicate handling is a
	// store-level decision.
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "topics_pkey"}
	mapped := MapError(unique)
	assert.Equal(t, error(unique), mapped)
	assert.False(t, errors.Is(mapped, store.ErrNotFound))
	assert.False(t, errors.Is(mapped, store.ErrInvalidInput))
}

func TestErrorCodePredicates(t *testing.T) {
	t.Parallel()

	invalidText := &pgconn.PgError{Code: "22P02"}
	fkViolation := &pgconn.PgError{Code: "23503"}
	uniqueViolation := &pgconn.PgError{Code: "23505"}
	plain := errors.New("not a pg error")

	assert.True(t, IsInvalidTextRepresentation(invalidText))
	assert.True(t, IsInvalidTextRepresentation(fmt.Errorf("wrapped: %w", invalidText)))
	assert.False(t, IsInvalidTextRepresentation(fkViolation))
	assert.False(t, IsInvalidTextRepresentation(plain))
	assert.False(t, IsInvalidTextRepresentation(nil))

	assert.True(t, IsForeignKeyViolation(fkViolation))
	assert.False(t, IsForeignKeyViolation(uniqueViolation))
	assert.False(t, IsForeignKeyViolation(plain))

	assert.True(t, IsUniqueViolation(uniqueViolation))
	assert.False(t, IsUniqueViolation(invalidText))
	assert.False(t, IsUniqueViolation(plain))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(fakeResult{rows: 1}, store.ErrCommentNotFound)
		assert.NoError(t, err)
	})

	t.Run("no rows affected returns the given error", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrCommentNotFound)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		t.Parallel()
		driverErr := errors.New("rows affected unsupported")
		err := CheckRowsAffected(fakeResult{err: driverErr}, store.ErrCommentNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, driverErr)
		assert.NotErrorIs(t, err, store.ErrCommentNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(nil, store.ErrCommentNotFound)
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrCommentNotFound)
	})
}
