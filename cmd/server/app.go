package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/newshub/newshub-api/internal/api"
	"github.com/newshub/newshub-api/internal/config"
	"github.com/newshub/newshub-api/internal/docs"
	"github.com/newshub/newshub-api/internal/platform/logger"
	"github.com/newshub/newshub-api/internal/platform/postgres"
	"github.com/newshub/newshub-api/internal/store"
)

// application holds the wired dependencies for the server process. The
// database handle is the only process-wide state; everything else is
// constructed from it at startup and injected downward.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore
	topicStore   store.TopicStore
	docsProvider api.DocsProvider
}

// newApplication loads configuration, sets up logging, opens the
// database, and constructs the stores.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return &application{
		config:       cfg,
		logger:       appLogger,
		db:           db,
		articleStore: postgres.NewPostgresArticleStore(db, appLogger),
		commentStore: postgres.NewPostgresCommentStore(db, appLogger),
		userStore:    postgres.NewPostgresUserStore(db, appLogger),
		topicStore:   postgres.NewPostgresTopicStore(db, appLogger),
		docsProvider: docs.NewProvider(cfg.Docs.Path),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
