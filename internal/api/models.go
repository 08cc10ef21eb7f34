package api

import (
	"github.com/newshub/newshub-api/internal/domain"
	"github.com/newshub/newshub-api/internal/store"
)

// Request bodies use pointer fields so a missing attribute (nil after
// decode, caught by the required tag) is distinguishable from a
// mistyped one (decode fails with *json.UnmarshalTypeError).

// PostArticleRequest is the body of POST /api/articles.
type PostArticleRequest struct {
	Author        *string `json:"author"          validate:"required"`
	Title         *string `json:"title"           validate:"required"`
	Body          *string `json:"body"            validate:"required"`
	Topic         *string `json:"topic"           validate:"required"`
	ArticleImgURL *string `json:"article_img_url"`
}

// PostCommentRequest is the body of POST /api/articles/{article_id}/comments.
type PostCommentRequest struct {
	Username *string `json:"username" validate:"required"`
	Body     *string `json:"body"     validate:"required"`
}

// PatchVotesRequest is the body of the vote-increment endpoints.
type PatchVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

// Success envelopes. Every success body is a named-key object.

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// ArticlesResponse wraps one page of article summaries plus the size of
// the whole filtered set.
type ArticlesResponse struct {
	Articles   []domain.ArticleSummary `json:"articles"`
	TotalCount int                     `json:"total_count"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// CommentsResponse wraps an article's comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// TopicsResponse wraps the topic collection.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// UsersResponse wraps the user collection.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// DocsResponse wraps the endpoint documentation object.
type DocsResponse struct {
	Docs map[string]any `json:"docs"`
}

// articlePageToResponse converts a store page into the response envelope.
func articlePageToResponse(page *store.ArticlePage) ArticlesResponse {
	return ArticlesResponse{
		Articles:   page.Articles,
		TotalCount: page.TotalCount,
	}
}
