package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newshub/newshub-api/internal/store"
)

func defaultFilter() store.ArticleFilter {
	return store.ArticleFilter{
		SortBy: store.SortByCreatedAt,
		Order:  store.OrderDesc,
		Limit:  10,
		Page:   1,
	}
}

func TestBuildListQueriesDefaults(t *testing.T) {
	t.Parallel()

	listQuery, listArgs, countQuery, countArgs, err := buildListQueries(defaultFilter())
	require.NoError(t, err)

	assert.Contains(t, listQuery, "ORDER BY articles.created_at DESC")
	assert.Contains(t, listQuery, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, listArgs)

	assert.NotContains(t, listQuery, "WHERE")
	assert.Equal(t, "SELECT COUNT(*) FROM articles", countQuery)
	assert.Empty(t, countArgs)
}

func TestBuildListQueriesTopicFilter(t *testing.T) {
	t.Parallel()

	filter := defaultFilter()
	filter.Topic = "cooking"

	listQuery, listArgs, countQuery, countArgs, err := buildListQueries(filter)
	require.NoError(t, err)

	assert.Contains(t, listQuery, "WHERE articles.topic = $1")
	assert.Contains(t, listQuery, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{"cooking", 10, 0}, listArgs)

	assert.Contains(t, countQuery, "WHERE topic = $1")
	assert.Equal(t, []any{"cooking"}, countArgs)
	// The count window must cover the whole filtered set, not one page.
	assert.NotContains(t, countQuery, "LIMIT")
}

func TestBuildListQueriesOffsetMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		limit  int
		page   int
		offset int
	}{
		{name: "first page", limit: 10, page: 1, offset: 0},
		{name: "second page", limit: 10, page: 2, offset: 10},
		{name: "small window deep page", limit: 5, page: 3, offset: 10},
		{name: "single row pages", limit: 1, page: 7, offset: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			filter := defaultFilter()
			filter.Limit = tc.limit
			filter.Page = tc.page

			_, listArgs, _, _, err := buildListQueries(filter)
			require.NoError(t, err)
			assert.Equal(t, []any{tc.limit, tc.offset}, listArgs)
		})
	}
}

func TestBuildListQueriesValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*store.ArticleFilter)
		wantErr error
	}{
		{
			name:    "unknown sort column",
			mutate:  func(f *store.ArticleFilter) { f.SortBy = "body" },
			wantErr: store.ErrInvalidSort,
		},
		{
			name:    "sort injection attempt",
			mutate:  func(f *store.ArticleFilter) { f.SortBy = "created_at; DROP TABLE articles" },
			wantErr: store.ErrInvalidSort,
		},
		{
			name:    "unknown order direction",
			mutate:  func(f *store.ArticleFilter) { f.Order = "sideways" },
			wantErr: store.ErrInvalidOrder,
		},
		{
			name:    "uppercase order is not accepted",
			mutate:  func(f *store.ArticleFilter) { f.Order = "DESC" },
			wantErr: store.ErrInvalidOrder,
		},
		{
			name:    "zero limit",
			mutate:  func(f *store.ArticleFilter) { f.Limit = 0 },
			wantErr: store.ErrInvalidPagination,
		},
		{
			name:    "negative limit",
			mutate:  func(f *store.ArticleFilter) { f.Limit = -5 },
			wantErr: store.ErrInvalidPagination,
		},
		{
			name:    "zero page",
			mutate:  func(f *store.ArticleFilter) { f.Page = 0 },
			wantErr: store.ErrInvalidPagination,
		},
		{
			name:    "negative page",
			mutate:  func(f *store.ArticleFilter) { f.Page = -1 },
			wantErr: store.ErrInvalidPagination,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			filter := defaultFilter()
			tc.mutate(&filter)

			_, _, _, _, err := buildListQueries(filter)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuildListQueriesSortAllowListIsComplete(t *testing.T) {
	t.Parallel()

	sortKeys := []string{
		store.SortByArticleID,
		store.SortByTitle,
		store.SortByAuthor,
		store.SortByTopic,
		store.SortByCreatedAt,
		store.SortByVotes,
		store.SortByCommentCount,
	}

	for _, key := range sortKeys {
		filter := defaultFilter()
		filter.SortBy = key

		listQuery, _, _, _, err := buildListQueries(filter)
		require.NoError(t, err, "sort key %q should be accepted", key)
		assert.Contains(t, listQuery, "ORDER BY "+articleSortColumns[key])
	}
}

func TestBuildListQueriesCommentCountSortsByAggregate(t *testing.T) {
	t.Parallel()

	filter := defaultFilter()
	filter.SortBy = store.SortByCommentCount
	filter.Order = store.OrderAsc

	listQuery, _, _, _, err := buildListQueries(filter)
	require.NoError(t, err)

	assert.Contains(t, listQuery, "ORDER BY comment_count ASC")
	assert.False(t, strings.Contains(listQuery, "articles.comment_count"),
		"comment_count is an aggregate, not a stored column")
}

func TestNewPostgresArticleStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresArticleStore(nil, nil)
	})
}
