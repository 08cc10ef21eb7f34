package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/platform/logger"
	"github.com/newshub/newshub-api/internal/store"
)

// articleSortColumns maps the allow-listed sort keys to the expression
// used in ORDER BY. Only values from this map are ever interpolated.
var articleSortColumns = map[string]string{
	store.SortByArticleID:    "articles.article_id",
	store.SortByTitle:        "articles.title",
	store.SortByAuthor:       "articles.author",
	store.SortByTopic:        "articles.topic",
	store.SortByCreatedAt:    "articles.created_at",
	store.SortByVotes:        "articles.votes",
	store.SortByCommentCount: "comment_count",
}

// orderDirections maps the allow-listed order keys to SQL direction
// keywords.
var orderDirections = map[string]string{
	store.OrderAsc:  "ASC",
	store.OrderDesc: "DESC",
}

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// GetByID implements store.ArticleStore.GetByID
// It retrieves an article joined with its live comment count.
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
		       articles.body, articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		if IsInvalidTextRepresentation(err) {
			return nil, store.ErrInvalidArticleID
		}
		log.Error("failed to get article by id",
			slog.String("error", err.Error()),
			slog.Int("article_id", id))
		return nil, err
	}

	return &article, nil
}

// buildListQueries validates the filter against the allow-lists and
// assembles the windowed select plus the matching unwindowed count. The
// count deliberately ignores LIMIT/OFFSET so total_count is correct on
// any page.
func buildListQueries(filter store.ArticleFilter) (listQuery string, listArgs []any, countQuery string, countArgs []any, err error) {
	sortColumn, ok := articleSortColumns[filter.SortBy]
	if !ok {
		return "", nil, "", nil, store.ErrInvalidSort
	}

	direction, ok := orderDirections[filter.Order]
	if !ok {
		return "", nil, "", nil, store.ErrInvalidOrder
	}

	if filter.Limit <= 0 || filter.Page <= 0 {
		return "", nil, "", nil, store.ErrInvalidPagination
	}

	listQuery = `
		SELECT articles.article_id, articles.title, articles.topic, articles.author,
		       articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id`
	countQuery = `SELECT COUNT(*) FROM articles`

	if filter.Topic != "" {
		listQuery += `
		WHERE articles.topic = $1`
		countQuery += ` WHERE topic = $1`
		listArgs = append(listArgs, filter.Topic)
		countArgs = append(countArgs, filter.Topic)
	}

	listQuery += `
		GROUP BY articles.article_id`
	listQuery += fmt.Sprintf(`
		ORDER BY %s %s`, sortColumn, direction)

	offset := (filter.Page - 1) * filter.Limit
	listQuery += fmt.Sprintf(`
		LIMIT $%d OFFSET $%d`, len(listArgs)+1, len(listArgs)+2)
	listArgs = append(listArgs, filter.Limit, offset)

	return listQuery, listArgs, countQuery, countArgs, nil
}

// List implements store.ArticleStore.List
// It retrieves one page of article summaries and the total size of the
// filtered set. A topic filter is existence-checked before querying.
func (s *PostgresArticleStore) List(ctx context.Context, filter store.ArticleFilter) (*store.ArticlePage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	listQuery, listArgs, countQuery, countArgs, err := buildListQueries(filter)
	if err != nil {
		return nil, err
	}

	if filter.Topic != "" {
		if err := CheckExists(ctx, s.db, "topics", "slug", filter.Topic, store.ErrTopicNotFound); err != nil {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("sort_by", filter.SortBy),
			slog.String("topic", filter.Topic))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	articles := []domain.ArticleSummary{}
	for rows.Next() {
		var a domain.ArticleSummary
		err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		)
		if err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	var totalCount int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		log.Error("failed to count articles",
			slog.String("error", err.Error()),
			slog.String("topic", filter.Topic))
		return nil, err
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.Int("total_count", totalCount))
	return &store.ArticlePage{Articles: articles, TotalCount: totalCount}, nil
}

// ListComments implements store.ArticleStore.ListComments
// It existence-checks the article first, then returns its comments
// newest-first. An existing article with no comments yields an empty
// slice.
func (s *PostgresArticleStore) ListComments(ctx context.Context, articleID int) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := CheckExists(ctx, s.db, "articles", "article_id", articleID, store.ErrArticleNotFound); err != nil {
		return nil, err
	}

	query := `
		SELECT comment_id, body, author, article_id, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, articleID)
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(
			&c.CommentID,
			&c.Body,
			&c.Author,
			&c.ArticleID,
			&c.Votes,
			&c.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return comments, nil
}

// Create implements store.ArticleStore.Create
// The author and topic references are verified concurrently; the insert
// is only issued once both checks resolve. When both references are
// dangling, whichever failure is observed first is surfaced.
func (s *PostgresArticleStore) Create(ctx context.Context, newArticle domain.NewArticle) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	newArticle.ApplyDefaults()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return CheckExists(gctx, s.db, "users", "username", newArticle.Author, store.ErrUserNotFound)
	})
	g.Go(func() error {
		return CheckExists(gctx, s.db, "topics", "slug", newArticle.Topic, store.ErrTopicNotFound)
	})
	if err := g.Wait(); err != nil {
		log.Warn("article insert rejected by reference check",
			slog.String("author", newArticle.Author),
			slog.String("topic", newArticle.Topic),
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO articles (title, topic, author, body, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, created_at, votes
	`

	article := domain.Article{
		Title:         newArticle.Title,
		Topic:         newArticle.Topic,
		Author:        newArticle.Author,
		Body:          newArticle.Body,
		ArticleImgURL: newArticle.ArticleImgURL,
		// A brand-new id cannot be referenced by any comment, so the
		// count is asserted rather than recounted.
		CommentCount: 0,
	}

	err := s.db.QueryRowContext(ctx, query,
		newArticle.Title,
		newArticle.Topic,
		newArticle.Author,
		newArticle.Body,
		newArticle.ArticleImgURL,
	).Scan(&article.ArticleID, &article.CreatedAt, &article.Votes)

	if err != nil {
		log.Error("failed to insert article",
			slog.String("error", err.Error()),
			slog.String("author", newArticle.Author),
			slog.String("topic", newArticle.Topic))
		return nil, MapError(err)
	}

	log.Info("article created",
		slog.Int("article_id", article.ArticleID),
		slog.String("author", article.Author),
		slog.String("topic", article.Topic))
	return &article, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The increment is relative and applied in a single statement, so
// concurrent increments to the same row cannot lose updates.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := CheckExists(ctx, s.db, "articles", "article_id", id, store.ErrArticleNotFound); err != nil {
		return nil, err
	}

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url,
		          (SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = articles.article_id)
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The row was deleted between the check and the update.
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to update article votes",
			slog.String("error", err.Error()),
			slog.Int("article_id", id),
			slog.Int("delta", delta))
		return nil, MapError(err)
	}

	log.Debug("article votes updated",
		slog.Int("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}
