// Package store defines the persistence interfaces for the news service
// along with the error taxonomy shared by all implementations.
package store
