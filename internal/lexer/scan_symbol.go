package lexer

func scanSymbol(rest string) (int, bool) {
	n := 0
	for n < len(rest) {
		r, sz := decodeAt(rest, n)
		if !isWordRune(r) {
			break
		}
		n += sz
	}
	return n, n > 0
}
