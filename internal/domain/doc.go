// Package domain defines the core entities of the news service:
// topics, users, articles, and comments.
package domain
