package store

import (
	"errors"
	"fmt"
)

// The error taxonomy is a closed set: every failure a store can produce
// wraps one of the sentinels below, and the API layer's normalizer maps
// each sentinel to exactly one HTTP status and message. Stores never
// swallow errors; anything outside this set bubbles up unchanged and is
// treated as an internal failure.
var (
	// ErrNotFound is the generic form of the entity-specific not-found
	// errors. A requested or referenced row does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is the generic form of the malformed-identifier
	// errors, covering both application-level parsing failures and
	// malformed literals rejected by the database itself.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsafeIdentifier is returned when a relation or column name is
	// requested that is not on the compiled allow-list. This indicates a
	// programming error, never bad user input: user-supplied values only
	// ever travel through parameter binding.
	ErrUnsafeIdentifier = errors.New("identifier not on allow-list")

	// Entity-specific not-found errors.

	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrTopicNotFound   = fmt.Errorf("%w: topic", ErrNotFound)

	// Malformed-identifier errors, keyed by which path segment was
	// implicated.

	ErrInvalidArticleID = fmt.Errorf("%w: article id", ErrInvalidInput)
	ErrInvalidCommentID = fmt.Errorf("%w: comment id", ErrInvalidInput)

	// Query-parameter validation errors for article listing.

	ErrInvalidSort       = errors.New("invalid sort_by query")
	ErrInvalidOrder      = errors.New("invalid order query")
	ErrInvalidPagination = errors.New("invalid pagination query")

	// Request-body validation errors.

	ErrMissingField     = errors.New("missing required field")
	ErrMissingVotes     = errors.New("missing inc_votes value")
	ErrInvalidFieldType = errors.New("invalid field type")
)

// IsNotFoundError reports whether err is any kind of not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInputError reports whether err is any kind of
// malformed-identifier error.
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
