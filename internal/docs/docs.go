// Package docs serves the static endpoint documentation exposed at
// GET /api.
package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Provider reads the endpoint documentation from a fixed JSON file.
// The file is read at request time; there is no caching, so edits are
// visible immediately.
type Provider struct {
	path string
}

// NewProvider creates a Provider that reads from the given path.
func NewProvider(path string) *Provider {
	if path == "" {
		path = "endpoints.json"
	}
	return &Provider{path: path}
}

// Get returns the parsed documentation object.
func (p *Provider) Get(ctx context.Context) (map[string]any, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read endpoint docs: %w", err)
	}

	var docs map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse endpoint docs: %w", err)
	}
	return docs, nil
}
