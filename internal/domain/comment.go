package domain

import "time"

// Comment is a reply attached to an article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment holds the caller-supplied attributes for a comment insert.
type NewComment struct {
	Username string
	Body     string
}
