package lexer

// scanString принимает "..." с экранированием: '\' съедает следующий символ.
// '\' в конце строки экранирует перевод строки, а строковый литерал через
// строки не продолжается, поэтому такой литерал не совпадает вовсе.
func scanString(rest string) (int, bool) {
	if len(rest) == 0 || rest[0] != '"' {
		return 0, false
	}
	i := 1
	for i < len(rest) {
		switch rest[i] {
		case '"':
			return i + 1, true
		case '\\':
			if i+1 >= len(rest) {
				return 0, false
			}
			_, sz := decodeAt(rest, i+1)
			i += 1 + sz
		default:
			_, sz := decodeAt(rest, i)
			i += sz
		}
	}
	// конец строки без закрывающей кавычки
	return 0, false
}

// MatchString reports whether text starts with a complete string literal.
func MatchString(text string) bool {
	_, ok := scanString(text)
	return ok
}
