package domain

// Topic is a named subject area that articles belong to.
// The slug is the primary identifier and is referenced by Article.Topic.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
