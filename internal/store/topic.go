package store

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
)

// TopicStore defines the interface for topic lookups. Topics are seeded
// externally; this service never creates or mutates them.
type TopicStore interface {
	// List retrieves all topics.
	List(ctx context.Context) ([]domain.Topic, error)
}
