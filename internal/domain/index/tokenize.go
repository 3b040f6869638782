package index

import (
	"strings"
	"unicode"
)

// minTokenLength drops single-character fragments such as the "s" left
// over from possessives.
const minTokenLength = 2

// tokenize lowercases text and splits it into alphanumeric tokens of at
// least two runes. Punctuation and symbols act as separators.
func tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/6)
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len([]rune(tok)) >= minTokenLength {
			tokens = append(tokens, tok)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}
