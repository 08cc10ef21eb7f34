// Package api provides HTTP handlers for the API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/newshub/newshub-api/internal/api/shared"
	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/platform/logger"
	"github.com/newshub/newshub-api/internal/store"
)

// Defaults for GET /api/articles query parameters.
const (
	defaultSortBy = store.SortByCreatedAt
	defaultOrder  = store.OrderDesc
	defaultLimit  = 10
	defaultPage   = 1
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		panic("logger cannot be nil for ArticleHandler")
	}

	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// respondError forwards any failure to the centralized normalizer. The
// handlers never interpret store errors themselves.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
}

// decodeBody decodes and validates a request body. A JSON type mismatch
// maps to the invalid-field-type rejection; a failed required check maps
// to missingErr, which varies by endpoint (missing fields vs missing
// inc_votes).
func decodeBody(r *http.Request, v interface{}, missingErr error) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return store.ErrInvalidFieldType
		}
		return missingErr
	}
	if err := shared.Validate.Struct(v); err != nil {
		return missingErr
	}
	return nil
}

// articleIDParam parses the article_id path segment.
// Returns store.ErrInvalidArticleID for a non-integer token.
func articleIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "article_id"))
	if err != nil {
		return 0, store.ErrInvalidArticleID
	}
	return id, nil
}

// GetArticleByID handles GET /api/articles/{article_id} requests.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := articleIDParam(r)
	if err != nil {
		log.Debug("invalid article id", slog.String("article_id", chi.URLParam(r, "article_id")))
		respondError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// listFilter assembles an ArticleFilter from the request query
// parameters, applying defaults for whatever is absent. A limit or page
// value that does not parse as an integer is rejected here; range
// validation belongs to the store.
func listFilter(r *http.Request) (store.ArticleFilter, error) {
	q := r.URL.Query()

	filter := store.ArticleFilter{
		SortBy: defaultSortBy,
		Order:  defaultOrder,
		Topic:  q.Get("topic"),
		Limit:  defaultLimit,
		Page:   defaultPage,
	}

	if v := q.Get("sort_by"); v != "" {
		filter.SortBy = v
	}
	if v := q.Get("order"); v != "" {
		filter.Order = v
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return store.ArticleFilter{}, store.ErrInvalidPagination
		}
		filter.Limit = n
	}
	if v := q.Get("p"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return store.ArticleFilter{}, store.ErrInvalidPagination
		}
		filter.Page = n
	}

	return filter, nil
}

// GetArticles handles GET /api/articles requests.
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilter(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	page, err := h.articles.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articlePageToResponse(page))
}

// GetArticleComments handles GET /api/articles/{article_id}/comments
// requests. An existing article with no comments responds 200 with an
// empty array.
func (h *ArticleHandler) GetArticleComments(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	comments, err := h.articles.ListComments(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: comments})
}

// PostArticle handles POST /api/articles requests.
func (h *ArticleHandler) PostArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PostArticleRequest
	if err := decodeBody(r, &req, store.ErrMissingField); err != nil {
		log.Debug("rejected article body", slog.String("error", err.Error()))
		respondError(w, r, err)
		return
	}

	newArticle := domain.NewArticle{
		Author: *req.Author,
		Title:  *req.Title,
		Body:   *req.Body,
		Topic:  *req.Topic,
	}
	if req.ArticleImgURL != nil {
		newArticle.ArticleImgURL = *req.ArticleImgURL
	}

	article, err := h.articles.Create(r.Context(), newArticle)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ArticleResponse{Article: article})
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests.
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req PatchVotesRequest
	if err := decodeBody(r, &req, store.ErrMissingVotes); err != nil {
		respondError(w, r, err)
		return
	}

	article, err := h.articles.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}
