// Package mocks provides hand-rolled store mocks for handler and router
// tests. Each mock exposes function fields so a test can script exactly
// the behavior it needs.
package mocks
