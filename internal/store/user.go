package store

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
)

// UserStore defines the interface for user lookups. Users are seeded
// externally; this service never creates or mutates them.
type UserStore interface {
	// List retrieves all users.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a single user.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
