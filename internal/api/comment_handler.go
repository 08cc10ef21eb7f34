package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/newshub/newshub-api/internal/api/shared"
	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/platform/logger"
	"github.com/newshub/newshub-api/internal/store"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// commentIDParam parses the comment_id path segment.
// Returns store.ErrInvalidCommentID for a non-integer token.
func commentIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "comment_id"))
	if err != nil {
		return 0, store.ErrInvalidCommentID
	}
	return id, nil
}

// PostComment handles POST /api/articles/{article_id}/comments requests.
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := articleIDParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req PostCommentRequest
	if err := decodeBody(r, &req, store.ErrMissingField); err != nil {
		log.Debug("rejected comment body", slog.String("error", err.Error()))
		respondError(w, r, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), articleID, domain.NewComment{
		Username: *req.Username,
		Body:     *req.Body,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: comment})
}

// PatchCommentVotes handles PATCH /api/comments/{comment_id} requests.
func (h *CommentHandler) PatchCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := commentIDParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req PatchVotesRequest
	if err := decodeBody(r, &req, store.ErrMissingVotes); err != nil {
		respondError(w, r, err)
		return
	}

	comment, err := h.comments.IncrementVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests.
// A successful delete responds 204 with an empty body.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := commentIDParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
