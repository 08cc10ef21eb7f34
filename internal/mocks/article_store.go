package mocks

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing.
type MockArticleStore struct {
	GetByIDFn        func(ctx context.Context, id int) (*domain.Article, error)
	ListFn           func(ctx context.Context, filter store.ArticleFilter) (*store.ArticlePage, error)
	ListCommentsFn   func(ctx context.Context, articleID int) ([]domain.Comment, error)
	CreateFn         func(ctx context.Context, newArticle domain.NewArticle) (*domain.Article, error)
	IncrementVotesFn func(ctx context.Context, id int, delta int) (*domain.Article, error)
}

// Ensure MockArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*MockArticleStore)(nil)

// GetByID implements the ArticleStore interface
func (m *MockArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrArticleNotFound
}

// List implements the ArticleStore interface
func (m *MockArticleStore) List(ctx context.Context, filter store.ArticleFilter) (*store.ArticlePage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return &store.ArticlePage{Articles: []domain.ArticleSummary{}}, nil
}

// ListComments implements the ArticleStore interface
func (m *MockArticleStore) ListComments(ctx context.Context, articleID int) ([]domain.Comment, error) {
	if m.ListCommentsFn != nil {
		return m.ListCommentsFn(ctx, articleID)
	}
	return []domain.Comment{}, nil
}

// Create implements the ArticleStore interface
func (m *MockArticleStore) Create(ctx context.Context, newArticle domain.NewArticle) (*domain.Article, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, newArticle)
	}
	return nil, store.ErrTopicNotFound
}

// IncrementVotes implements the ArticleStore interface
func (m *MockArticleStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return nil, store.ErrArticleNotFound
}
