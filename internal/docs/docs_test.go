package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "endpoints.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProviderGet(t *testing.T) {
	t.Parallel()

	t.Run("parses the documentation file", func(t *testing.T) {
		t.Parallel()

		path := writeDocsFile(t, `{
			"GET /api": {"description": "serves the endpoint docs"},
			"GET /api/topics": {"description": "serves an array of all topics"}
		}`)

		docs, err := NewProvider(path).Get(context.Background())
		require.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Contains(t, docs, "GET /api/topics")
	})

	t.Run("edits are visible without restart", func(t *testing.T) {
		t.Parallel()

		path := writeDocsFile(t, `{"GET /api": {}}`)
		provider := NewProvider(path)

		docs, err := provider.Get(context.Background())
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		require.NoError(t, os.WriteFile(path, []byte(`{"GET /api": {}, "GET /api/users": {}}`), 0o600))

		docs, err = provider.Get(context.Background())
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		provider := NewProvider(filepath.Join(t.TempDir(), "nope.json"))
		_, err := provider.Get(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		path := writeDocsFile(t, `{"GET /api": `)
		_, err := NewProvider(path).Get(context.Background())
		assert.Error(t, err)
	})
}

func TestNewProviderDefaultsPath(t *testing.T) {
	t.Parallel()

	provider := NewProvider("")
	assert.Equal(t, "endpoints.json", provider.path)
}
