package glyphatlas

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// whitespace is the Unicode White_Space property plus the zero-width
// spacers fonts commonly leave unmapped.
var whitespace = rangetable.Merge(
	unicode.White_Space,
	rangetable.New('\u200B', '\u2060', '\uFEFF'),
)

func isWhitespace(r rune) bool {
	return unicode.Is(whitespace, r)
}
