package store

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
)

// Sort keys accepted by ArticleStore.List. All but comment_count name a
// column of the articles relation; comment_count names the derived
// aggregate.
const (
	SortByArticleID    = "article_id"
	SortByTitle        = "title"
	SortByAuthor       = "author"
	SortByTopic        = "topic"
	SortByCreatedAt    = "created_at"
	SortByVotes        = "votes"
	SortByCommentCount = "comment_count"
)

// Order directions accepted by ArticleStore.List.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ArticleFilter describes how a collection fetch should be sorted,
// filtered, and windowed. An empty Topic means no topic filter.
type ArticleFilter struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Page   int
}

// ArticlePage is one window of the filtered article collection.
// TotalCount reflects the size of the whole filtered set, independent of
// the requested window, so pagination metadata is correct on any page.
type ArticlePage struct {
	Articles   []domain.ArticleSummary
	TotalCount int
}

// ArticleStore defines the interface for article persistence.
type ArticleStore interface {
	// GetByID retrieves a single article with its comment count.
	// Returns ErrArticleNotFound if no article has the given id.
	GetByID(ctx context.Context, id int) (*domain.Article, error)

	// List retrieves one page of article summaries plus the total count
	// of the filtered set. Returns ErrInvalidSort, ErrInvalidOrder, or
	// ErrInvalidPagination for out-of-range filter values, and
	// ErrTopicNotFound when a topic filter names no existing topic.
	// Ordering between rows with equal sort keys is unspecified.
	List(ctx context.Context, filter ArticleFilter) (*ArticlePage, error)

	// ListComments retrieves an article's comments, newest first.
	// Returns ErrArticleNotFound if the article does not exist; an
	// existing article with no comments yields an empty slice.
	ListComments(ctx context.Context, articleID int) ([]domain.Comment, error)

	// Create inserts a new article after concurrently verifying that the
	// author and topic exist. Returns ErrUserNotFound or ErrTopicNotFound
	// for a dangling reference; when both are dangling, which of the two
	// is returned is unspecified. The stored article comes back with a
	// server-assigned id and timestamp, zero votes, and a zero comment
	// count.
	Create(ctx context.Context, newArticle domain.NewArticle) (*domain.Article, error)

	// IncrementVotes atomically applies a relative vote change and
	// returns the updated article. Delta may be negative and the result
	// may go below zero. Returns ErrArticleNotFound if the article does
	// not exist.
	IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error)
}
