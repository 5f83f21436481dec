package token

import (
	"pineapple/internal/source"
)

// Token represents a single lexeme with a delta-encoded start position.
type Token struct {
	Kind      Kind
	LineDelta uint32
	ColDelta  uint32
	Text      string
	Type      SemanticType
	Modifiers Modifier
}

// Length is the token length in UTF-16 code units.
func (t Token) Length() uint32 {
	return source.UTF16Len(t.Text)
}

// IsOperator reports whether the token is the operator lexeme op.
func (t Token) IsOperator(op string) bool {
	return t.Kind == Operator && t.Text == op
}

// IsKeyword reports whether the token was classified as keyword kw.
func (t Token) IsKeyword(kw string) bool {
	return t.Type == TypeKeyword && t.Text == kw
}

// Positions walks the deltas from (0,0) and returns the absolute start of
// every token.
func Positions(toks []Token) []source.Position {
	out := make([]source.Position, len(toks))
	var line, col uint32
	for i, t := range toks {
		if t.LineDelta > 0 {
			line += t.LineDelta
			col = t.ColDelta
		} else {
			col += t.ColDelta
		}
		out[i] = source.Position{Line: line, Col: col}
	}
	return out
}
