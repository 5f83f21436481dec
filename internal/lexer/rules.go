package lexer

import (
	"pineapple/internal/token"
)

// rule is one entry of the fixed-priority match table. match returns the
// number of bytes accepted at the start of rest and whether it matched at all.
type rule struct {
	name  string
	emit  bool
	kind  token.Kind
	typ   token.SemanticType
	match func(rest string) (int, bool)
}

// Порядок важен: пробелы, строки, символы, операторы.
var defaultRules = []rule{
	{name: "space", emit: false, match: scanSpace},
	{name: "string", emit: true, kind: token.String, typ: token.TypeString, match: scanString},
	{name: "symbol", emit: true, kind: token.Symbol, typ: token.TypeNone, match: scanSymbol},
	{name: "operator", emit: true, kind: token.Operator, typ: token.TypeOperator, match: scanOperator},
}
