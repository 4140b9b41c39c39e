package dedent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "empty"},
		{desc: "only newlines", give: "\n\n\n"},
		{desc: "only spaces", give: "   \n  \n"},
		{
			desc: "single line",
			give: "hello",
			want: "hello\n",
		},
		{
			desc: "leading newline",
			give: "\n    hello\n",
			want: "hello\n",
		},
		{
			desc: "several leading newlines",
			give: "\n\n\n    hello\n    world\n    ",
			want: "hello\nworld\n",
		},
		{
			desc: "relative indentation",
			give: "\n    fn gcd() {\n        body\n    }\n  ",
			want: "fn gcd() {\n    body\n}\n",
		},
		{
			desc: "interior blank line",
			give: "\n    a\n\n    b\n",
			want: "a\n\nb\n",
		},
		{
			desc: "whitespace-only interior line",
			give: "\n        a\n  \n        b\n",
			want: "a\n\nb\n",
		},
		{
			desc: "least indented line wins",
			give: "      a\n    b\n        c\n",
			want: "  a\nb\n    c\n",
		},
		{
			desc: "no indentation",
			give: "a\n  b\n",
			want: "a\n  b\n",
		},
		{
			desc: "trailing spaces and newlines",
			give: "  a  \n \n\n",
			want: "a\n",
		},
		{
			desc: "tabs",
			give: "\n\tfoo\n\t\tbar\n",
			want: "foo\n\tbar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := Clean(tt.give)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Clean(got), "Clean must be idempotent")
		})
	}
}
