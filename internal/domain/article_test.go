package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewArticleApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills in the placeholder image", func(t *testing.T) {
		t.Parallel()

		n := NewArticle{Author: "a", Title: "t", Body: "b", Topic: "cats"}
		n.ApplyDefaults()
		assert.Equal(t, DefaultArticleImgURL, n.ArticleImgURL)
	})

	t.Run("keeps a supplied image", func(t *testing.T) {
		t.Parallel()

		n := NewArticle{ArticleImgURL: "https://example.com/own.png"}
		n.ApplyDefaults()
		assert.Equal(t, "https://example.com/own.png", n.ArticleImgURL)
	})
}
