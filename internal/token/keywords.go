package token

const (
	KwType = "type"
	KwFnc  = "fnc"
)

var keywords = map[string]struct{}{
	KwType: {},
	KwFnc:  {},
}

// IsKeywordText reports whether ident is a reserved word.
// Ключевые слова регистрозависимые - только lowercase.
func IsKeywordText(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
