package lexer

import (
	"unicode"
	"unicode/utf8"
)

func scanSpace(rest string) (int, bool) {
	n := 0
	for n < len(rest) {
		r, sz := utf8.DecodeRuneInString(rest[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += sz
	}
	return n, n > 0
}
