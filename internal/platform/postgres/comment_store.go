package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/platform/logger"
	"github.com/newshub/newshub-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. Unlike the other stores it requires a *sql.DB
// rather than a DBTX because Delete opens its own transaction.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db *sql.DB, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
// The author and article references are verified concurrently; the
// insert is only issued once both checks resolve. When both references
// are dangling, whichever failure is observed first is surfaced.
func (s *PostgresCommentStore) Create(ctx context.Context, articleID int, newComment domain.NewComment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return CheckExists(gctx, s.db, "users", "username", newComment.Username, store.ErrUserNotFound)
	})
	g.Go(func() error {
		return CheckExists(gctx, s.db, "articles", "article_id", articleID, store.ErrArticleNotFound)
	})
	if err := g.Wait(); err != nil {
		log.Warn("comment insert rejected by reference check",
			slog.String("username", newComment.Username),
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at
	`

	comment := domain.Comment{
		Body:      newComment.Body,
		Author:    newComment.Username,
		ArticleID: articleID,
	}

	err := s.db.QueryRowContext(ctx, query,
		newComment.Body,
		newComment.Username,
		articleID,
	).Scan(&comment.CommentID, &comment.Votes, &comment.CreatedAt)

	if err != nil {
		log.Error("failed to insert comment",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID),
			slog.String("author", newComment.Username))
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int("comment_id", comment.CommentID),
		slog.Int("article_id", articleID),
		slog.String("author", comment.Author))
	return &comment, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
// The increment is relative and applied in a single statement, so
// concurrent increments to the same row cannot lose updates.
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := CheckExists(ctx, s.db, "comments", "comment_id", id, store.ErrCommentNotFound); err != nil {
		return nil, err
	}

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, author, article_id, votes, created_at
	`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&comment.CommentID,
		&comment.Body,
		&comment.Author,
		&comment.ArticleID,
		&comment.Votes,
		&comment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The row was deleted between the check and the update.
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to update comment votes",
			slog.String("error", err.Error()),
			slog.Int("comment_id", id),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	log.Debug("comment votes updated",
		slog.Int("comment_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", comment.Votes))
	return &comment, nil
}

// Delete implements store.CommentStore.Delete
// The existence check and the delete run inside one transaction so the
// not-found report and the removal agree with each other.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := CheckExists(ctx, tx, "comments", "comment_id", id, store.ErrCommentNotFound); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, store.ErrCommentNotFound)
	})

	if err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			log.Debug("comment not found for delete", slog.Int("comment_id", id))
		} else {
			log.Error("failed to delete comment",
				slog.String("error", err.Error()),
				slog.Int("comment_id", id))
		}
		return err
	}

	log.Info("comment deleted", slog.Int("comment_id", id))
	return nil
}
