package lexer

import "strings"

// Жадность: сначала двухсимвольные, затем односимвольные.
var operators = []string{
	"->",
	"{", "}", "(", ")", ".", ",", "+", ":", "*", "-", "=",
}

func scanOperator(rest string) (int, bool) {
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return len(op), true
		}
	}
	return 0, false
}
