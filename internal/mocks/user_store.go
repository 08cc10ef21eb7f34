package mocks

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	ListFn          func(ctx context.Context) ([]domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Users backs the default GetByUsername implementation.
	Users map[string]*domain.User
}

// NewMockUserStore creates a mock store with an empty user map.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	users := []domain.User{}
	for _, u := range m.Users {
		users = append(users, *u)
	}
	return users, nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	if u, ok := m.Users[username]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}
