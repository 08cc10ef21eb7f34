package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/newshub/newshub-api/internal/api/shared"
)

// DocsProvider supplies the static endpoint documentation.
type DocsProvider interface {
	Get(ctx context.Context) (map[string]any, error)
}

// DocsHandler serves the endpoint documentation at GET /api.
type DocsHandler struct {
	docs   DocsProvider
	logger *slog.Logger
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler(docs DocsProvider, logger *slog.Logger) *DocsHandler {
	if logger == nil {
		panic("logger cannot be nil for DocsHandler")
	}

	return &DocsHandler{
		docs:   docs,
		logger: logger.With(slog.String("component", "docs_handler")),
	}
}

// GetDocs handles GET /api requests.
func (h *DocsHandler) GetDocs(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docs.Get(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DocsResponse{Docs: docs})
}
