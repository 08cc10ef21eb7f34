package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/newshub/newshub-api/internal/api"
	apiMiddleware "github.com/newshub/newshub-api/internal/api/middleware"
	"github.com/newshub/newshub-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	docsHandler := api.NewDocsHandler(app.docsProvider, app.logger)
	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", docsHandler.GetDocs)

		r.Get("/topics", topicHandler.GetTopics)

		r.Get("/users", userHandler.GetUsers)
		r.Get("/users/{username}", userHandler.GetUserByUsername)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.GetArticles)
			r.Post("/", articleHandler.PostArticle)
			r.Get("/{article_id}", articleHandler.GetArticleByID)
			r.Patch("/{article_id}", articleHandler.PatchArticleVotes)
			r.Get("/{article_id}/comments", articleHandler.GetArticleComments)
			r.Post("/{article_id}/comments", commentHandler.PostComment)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Delete("/{comment_id}", commentHandler.DeleteComment)
			r.Patch("/{comment_id}", commentHandler.PatchCommentVotes)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
