// Package api contains the HTTP handlers, request/response models, and
// the error normalizer translating store failures into status/message
// pairs.
package api
