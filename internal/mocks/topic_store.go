package mocks

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/store"
)

// MockTopicStore implements store.TopicStore for testing.
type MockTopicStore struct {
	ListFn func(ctx context.Context) ([]domain.Topic, error)

	Topics []domain.Topic
}

// Ensure MockTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*MockTopicStore)(nil)

// List implements the TopicStore interface
func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Topics, nil
}
