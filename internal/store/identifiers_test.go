package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		relation string
		column   string
		wantErr  bool
	}{
		{
			name:     "topics slug allowed",
			relation: "topics",
			column:   "slug",
			wantErr:  false,
		},
		{
			name:     "users username allowed",
			relation: "users",
			column:   "username",
			wantErr:  false,
		},
		{
			name:     "articles article_id allowed",
			relation: "articles",
			column:   "article_id",
			wantErr:  false,
		},
		{
			name:     "articles topic allowed",
			relation: "articles",
			column:   "topic",
			wantErr:  false,
		},
		{
			name:     "comments comment_id allowed",
			relation: "comments",
			column:   "comment_id",
			wantErr:  false,
		},
		{
			name:     "comments article_id allowed",
			relation: "comments",
			column:   "article_id",
			wantErr:  false,
		},
		{
			name:     "unknown relation rejected",
			relation: "sessions",
			column:   "id",
			wantErr:  true,
		},
		{
			name:     "known relation unknown column rejected",
			relation: "articles",
			column:   "votes",
			wantErr:  true,
		},
		{
			name:     "column of a different relation rejected",
			relation: "topics",
			column:   "username",
			wantErr:  true,
		},
		{
			name:     "injection attempt rejected",
			relation: "articles; DROP TABLE articles",
			column:   "article_id",
			wantErr:  true,
		},
		{
			name:     "empty pair rejected",
			relation: "",
			column:   "",
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := SafeIdentifier(tc.relation, tc.column)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsafeIdentifier)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
