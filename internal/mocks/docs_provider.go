package mocks

import "context"

// MockDocsProvider implements api.DocsProvider for testing.
type MockDocsProvider struct {
	GetFn func(ctx context.Context) (map[string]any, error)

	Docs map[string]any
}

// Get implements the DocsProvider interface
func (m *MockDocsProvider) Get(ctx context.Context) (map[string]any, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return m.Docs, nil
}
