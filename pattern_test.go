package wren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComponent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		token string
		want  component
	}{
		{
			name:  "literal",
			token: "users",
			want:  component{kind: kindLiteral, text: "users"},
		},
		{
			name:  "named parameter",
			token: ":id",
			want:  component{kind: kindParam, text: ":id", key: "id"},
		},
		{
			name:  "braced parameter",
			token: "{id}",
			want:  component{kind: kindParam, text: "{id}", key: "id"},
		},
		{
			name:  "wildcard",
			token: "*",
			want:  component{kind: kindWildcard, text: "*"},
		},
		{
			name:  "empty braces are a wildcard",
			token: "{}",
			want:  component{kind: kindWildcard, text: "{}"},
		},
		{
			name:  "catch all",
			token: "**",
			want:  component{kind: kindCatchAll, text: "**"},
		},
		{
			name:  "partial capture with suffix",
			token: "{file}.jpg",
			want:  component{kind: kindPartialCapture, text: "{file}.jpg", key: "file", suffix: ".jpg"},
		},
		{
			name:  "partial capture with prefix",
			token: "file.{ext}",
			want:  component{kind: kindPartialCapture, text: "file.{ext}", key: "ext", prefix: "file."},
		},
		{
			name:  "partial capture with prefix and suffix",
			token: "a{x}b",
			want:  component{kind: kindPartialCapture, text: "a{x}b", key: "x", prefix: "a", suffix: "b"},
		},
		{
			name:  "partial wildcard with empty braces",
			token: "img-{}",
			want:  component{kind: kindPartialWildcard, text: "img-{}", prefix: "img-"},
		},
		{
			name:  "partial wildcard with star suffix",
			token: "file*",
			want:  component{kind: kindPartialWildcard, text: "file*", prefix: "file"},
		},
		{
			name:  "partial wildcard with star prefix",
			token: "*.jpg",
			want:  component{kind: kindPartialWildcard, text: "*.jpg", suffix: ".jpg"},
		},
		{
			name:  "partial wildcard with star infix",
			token: "a*b",
			want:  component{kind: kindPartialWildcard, text: "a*b", prefix: "a", suffix: "b"},
		},
		{
			name:  "unbalanced open brace is a literal",
			token: "{file.jpg",
			want:  component{kind: kindLiteral, text: "{file.jpg"},
		},
		{
			name:  "unbalanced close brace is a literal",
			token: "file}.jpg",
			want:  component{kind: kindLiteral, text: "file}.jpg"},
		},
		{
			name:  "close before open is a literal",
			token: "a}b{c",
			want:  component{kind: kindLiteral, text: "a}b{c"},
		},
		{
			name:  "bare colon is a literal",
			token: ":",
			want:  component{kind: kindLiteral, text: ":"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, parseComponent(tc.token))
		})
	}
}
