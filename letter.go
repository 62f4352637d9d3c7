package avatar

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalizeLetter derives the display character from an identity string:
// trim surrounding whitespace, take the first character, optionally
// uppercase it.
//
// The trimmed string is NFC-composed first so that a base rune followed by
// a combining mark ("e" + U+0301) yields the single precomposed rune
// rather than the bare base character.
func normalizeLetter(text string, capitalize bool) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	r, _ := utf8.DecodeRuneInString(norm.NFC.String(trimmed))
	if capitalize {
		r = unicode.ToUpper(r)
	}
	return string(r), nil
}
