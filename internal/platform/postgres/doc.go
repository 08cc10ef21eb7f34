// Package postgres implements the store interfaces against a PostgreSQL
// database. All queries are parameterized; the only identifiers that are
// interpolated come from compiled allow-lists.
package postgres
