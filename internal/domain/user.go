package domain

// User is an account that authors articles and comments.
// The username is the primary identifier and is referenced by
// Article.Author and Comment.Author.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
