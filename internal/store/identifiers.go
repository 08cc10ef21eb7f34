package store

// allowedIdentifiers is the compiled allow-list of relation/column pairs
// that may appear in identifier position of a dynamically built query.
// Everything else in a query is either fixed SQL text or a bound
// parameter, so this list is the only gate between runtime values and
// identifier interpolation.
var allowedIdentifiers = map[string]map[string]bool{
	"topics": {
		"slug": true,
	},
	"users": {
		"username": true,
	},
	"articles": {
		"article_id": true,
		"topic":      true,
	},
	"comments": {
		"comment_id": true,
		"article_id": true,
	},
}

// SafeIdentifier verifies that the relation/column pair is on the
// allow-list. Returns ErrUnsafeIdentifier otherwise.
func SafeIdentifier(relation, column string) error {
	if allowedIdentifiers[relation][column] {
		return nil
	}
	return ErrUnsafeIdentifier
}
