package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextStripsEscapes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b]8;;https://evil\x07click\x1b]8;;\x07", "click"},
		{"title\x1b]0;pwn\x1b\\", "title"},
		{"bell\x07", "bell"},
		{"safe\u202eexe.txt", "safeexe.txt"},
		{"keep\nlines\tand tabs", "keep\nlines\tand tabs"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeText(tc.in), "%q", tc.in)
	}
	assert.Equal(t, "", SanitizeText(""))
}

func TestSanitizeOneLineFlattensWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", SanitizeOneLine("a\nb\tc"))
	assert.Equal(t, "click", SanitizeOneLine("\x1b]8;;https://evil\x07click\x1b]8;;\x07"))
}
