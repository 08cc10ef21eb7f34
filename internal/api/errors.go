package api

import (
	"errors"
	"net/http"

	"github.com/newshub/newshub-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based
// on the error type. Any error outside the store taxonomy maps to 500:
// unexpected store failures are propagated, not masked as client
// errors.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidSort),
		errors.Is(err, store.ErrInvalidOrder),
		errors.Is(err, store.ErrInvalidPagination),
		errors.Is(err, store.ErrMissingField),
		errors.Is(err, store.ErrMissingVotes),
		errors.Is(err, store.ErrInvalidFieldType):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns the user-facing msg string for an error.
// The mapping covers the whole store taxonomy; anything else gets a
// generic message so internal details never leak into a response body.
func SafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrArticleNotFound):
		return "Article not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrTopicNotFound):
		return "Topic not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidArticleID):
		return "Invalid article id"
	case errors.Is(err, store.ErrInvalidCommentID):
		return "Invalid comment id"
	case errors.Is(err, store.ErrInvalidInput):
		return "Invalid input"

	case errors.Is(err, store.ErrInvalidSort):
		return "Invalid sort query"
	case errors.Is(err, store.ErrInvalidOrder):
		return "Invalid order query"
	case errors.Is(err, store.ErrInvalidPagination):
		return "Invalid pagination query"

	case errors.Is(err, store.ErrMissingVotes):
		return "Missing inc_votes value"
	case errors.Is(err, store.ErrMissingField):
		return "Missing required fields"
	case errors.Is(err, store.ErrInvalidFieldType):
		return "Invalid field type"

	default:
		return "Internal server error"
	}
}
