package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLiteralCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "color:red", want: "color: red;"},
		{input: " color : red ; ", want: "color: red;"},
		{input: "a:1;b:2;c:3", want: "a: 1;b: 2;c: 3;"},
		{input: "no-colon; a:1", want: "a: 1;"},
		{input: ";;;", want: ""},
		{input: "grid-area: 1 / 2 / 3", want: "grid-area: 1 / 2 / 3;"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLiteralCSS(tt.input))
		})
	}
}

func TestStylePrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rounded-t-", stylePrefix("rounded-t-md"))
	assert.Equal(t, "p-", stylePrefix("p-20"))
	assert.Equal(t, "-", stylePrefix("hflex"))
	assert.Equal(t, "md", lastSegment("rounded-t-md"))
	assert.Equal(t, "hflex", lastSegment("hflex"))
}
