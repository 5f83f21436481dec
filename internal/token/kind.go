package token

// Kind is the raw lexical category assigned by the lexer.
type Kind uint8

const (
	// Invalid is the zero Kind and never produced by the lexer.
	Invalid Kind = iota
	// Symbol is a run of word characters.
	Symbol
	// Operator is one of the fixed operator/punctuation lexemes.
	Operator
	// String is a double-quoted literal.
	String
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "Symbol"
	case Operator:
		return "Operator"
	case String:
		return "String"
	default:
		return "Invalid"
	}
}
