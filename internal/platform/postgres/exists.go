package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newshub/newshub-api/internal/platform/logger"
	"github.com/newshub/newshub-api/internal/store"
)

// CheckExists is the reusable precondition gate used before every
// mutation and before single-entity fetches that must distinguish a
// well-formed but nonexistent id from a malformed one. It issues one
// equality lookup and returns nil when at least one row matches,
// notFoundErr otherwise.
//
// The relation and column are interpolated into the query text, so they
// must pass the store allow-list; a pair outside the list returns
// store.ErrUnsafeIdentifier without touching the database. The value
// itself only ever travels through parameter binding.
func CheckExists(ctx context.Context, db store.DBTX, relation, column string, value any, notFoundErr error) error {
	if err := store.SafeIdentifier(relation, column); err != nil {
		return fmt.Errorf("%w: %s.%s", err, relation, column)
	}

	log := logger.FromContext(ctx)

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", relation, column)

	var exists bool
	if err := db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		log.Error("existence check failed",
			slog.String("relation", relation),
			slog.String("column", column),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if !exists {
		return notFoundErr
	}
	return nil
}
