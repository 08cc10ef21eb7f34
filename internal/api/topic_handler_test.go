package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/mocks"
)

func TestGetTopics(t *testing.T) {
	t.Parallel()

	newRouter := func(topics *mocks.MockTopicStore) http.Handler {
		h := NewTopicHandler(topics, testLogger())
		r := chi.NewRouter()
		r.Get("/api/topics", h.GetTopics)
		return r
	}

	t.Run("lists all topics", func(t *testing.T) {
		t.Parallel()

		topics := &mocks.MockTopicStore{
			Topics: []domain.Topic{
				{Slug: "mitch", Description: "The man, the Mitch, the legend"},
				{Slug: "cats", Description: "Not dogs"},
			},
		}

		rec := doRequest(t, newRouter(topics), http.MethodGet, "/api/topics", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TopicsResponse
		decodeBodyInto(t, rec, &resp)
		require.Len(t, resp.Topics, 2)
		assert.Equal(t, "mitch", resp.Topics[0].Slug)
		assert.Equal(t, "Not dogs", resp.Topics[1].Description)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		topics := &mocks.MockTopicStore{
			ListFn: func(ctx context.Context) ([]domain.Topic, error) {
				return nil, errors.New("connection refused")
			},
		}

		rec := doRequest(t, newRouter(topics), http.MethodGet, "/api/topics", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", errorMsg(t, rec))
	})
}
