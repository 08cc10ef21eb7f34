package mocks

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	CreateFn         func(ctx context.Context, articleID int, newComment domain.NewComment) (*domain.Comment, error)
	IncrementVotesFn func(ctx context.Context, id int, delta int) (*domain.Comment, error)
	DeleteFn         func(ctx context.Context, id int) error
}

// Ensure MockCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*MockCommentStore)(nil)

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, articleID int, newComment domain.NewComment) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, articleID, newComment)
	}
	return nil, store.ErrArticleNotFound
}

// IncrementVotes implements the CommentStore interface
func (m *MockCommentStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return nil, store.ErrCommentNotFound
}

// Delete implements the CommentStore interface
func (m *MockCommentStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return store.ErrCommentNotFound
}
