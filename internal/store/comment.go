package store

import (
	"context"

	"github.com/newshub/newshub-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create inserts a new comment on an article after concurrently
	// verifying that the author and the article exist. Returns
	// ErrUserNotFound or ErrArticleNotFound for a dangling reference;
	// when both are dangling, which of the two is returned is
	// unspecified.
	Create(ctx context.Context, articleID int, newComment domain.NewComment) (*domain.Comment, error)

	// IncrementVotes atomically applies a relative vote change and
	// returns the updated comment. Returns ErrCommentNotFound if the
	// comment does not exist.
	IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error)

	// Delete removes a comment. The existence check and the delete run
	// inside one transaction. Returns ErrCommentNotFound if the comment
	// does not exist.
	Delete(ctx context.Context, id int) error
}
