package components

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// CSI sequences such as colors and cursor moves.
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
	// OSC sequences such as hyperlinks and window titles, BEL or ST terminated.
	oscPattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)
)

// SanitizeText removes terminal escape sequences, control characters and
// bidi overrides from untrusted record data. Newlines and tabs survive.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := csiPattern.ReplaceAllString(oscPattern.ReplaceAllString(input, ""), "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case unicode.IsControl(r), unicode.Is(unicode.Bidi_Control, r):
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine is SanitizeText with newlines and tabs turned into spaces.
func SanitizeOneLine(input string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		return r
	}, SanitizeText(input))
}
