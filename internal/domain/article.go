package domain

import "time"

// DefaultArticleImgURL is used when a new article is submitted without
// an image URL of its own.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a published piece of writing. CommentCount is derived by
// counting related comments at query time; it is never stored.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleSummary is the list projection of an article. It carries the
// same fields as Article minus the body.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// NewArticle holds the caller-supplied attributes for an article insert.
// The id, creation time, and vote count are assigned by the store.
type NewArticle struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}

// ApplyDefaults fills in the placeholder image URL when none was supplied.
func (n *NewArticle) ApplyDefaults() {
	if n.ArticleImgURL == "" {
		n.ArticleImgURL = DefaultArticleImgURL
	}
}
