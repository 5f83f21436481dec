package classify

import (
	"unicode"
	"unicode/utf8"

	"pineapple/internal/lexer"
	"pineapple/internal/token"
)

type state struct {
	inParen bool
	inBrace bool
}

// view is what a rule may look at: the token, its neighbours and the
// bracket flags. prev is already classified, next is not (only its lexer
// pre-typing is reliable).
type view struct {
	prev *token.Token
	tok  *token.Token
	next *token.Token
	st   *state
}

type rule struct {
	name  string
	when  func(v view) bool
	apply func(v view)
}

var rules = []rule{
	{name: "operator", when: isOperator, apply: trackBrackets},
	{name: "keyword", when: isKeyword, apply: set(token.TypeKeyword, 0)},
	{name: "type", when: startsUpper, apply: typeName},
	{name: "function", when: isFunction, apply: set(token.TypeFunction, token.ModDefinition)},
	{name: "parameter", when: isParameter, apply: set(token.TypeParameter, 0)},
	{name: "annotation", when: isAnnotation, apply: set(token.TypeType, token.ModDefaultLibrary)},
	{name: "number", when: isNumber, apply: set(token.TypeNumber, 0)},
	{name: "string", when: isString, apply: set(token.TypeString, 0)},
	{name: "variable", when: always, apply: set(token.TypeVariable, 0)},
}

func set(typ token.SemanticType, mods token.Modifier) func(v view) {
	return func(v view) {
		v.tok.Type = typ
		v.tok.Modifiers = mods
	}
}

func isOperator(v view) bool {
	return v.tok.Kind == token.Operator
}

func trackBrackets(v view) {
	switch v.tok.Text {
	case "(":
		v.st.inParen = true
	case ")":
		v.st.inParen = false
	case "{":
		v.st.inBrace = true
	case "}":
		v.st.inBrace = false
	}
}

func isKeyword(v view) bool {
	return token.IsKeywordText(v.tok.Text)
}

func startsUpper(v view) bool {
	r, _ := utf8.DecodeRuneInString(v.tok.Text)
	return unicode.IsUpper(r)
}

// typeName marks `type Foo` as the declaration of Foo; every other
// capitalized name is a reference.
func typeName(v view) {
	v.tok.Type = token.TypeType
	v.tok.Modifiers = 0
	if v.prev != nil && v.prev.IsKeyword(token.KwType) {
		v.tok.Modifiers = token.ModDefinition
	}
}

// isFunction also fires at call sites (`add(1)`), which get the definition
// modifier as well.
func isFunction(v view) bool {
	if v.prev != nil && v.prev.IsKeyword(token.KwFnc) {
		return true
	}
	return v.next != nil && v.next.IsOperator("(")
}

func isParameter(v view) bool {
	return v.next != nil && v.next.IsOperator(":") && v.st.inBrace
}

func isAnnotation(v view) bool {
	return v.prev != nil && v.prev.IsOperator(":") && v.st.inParen
}

// isNumber matches a leading \d+(\.\d+)?, so "3px" counts as a number.
func isNumber(v view) bool {
	r, _ := utf8.DecodeRuneInString(v.tok.Text)
	return unicode.IsDigit(r)
}

func isString(v view) bool {
	return lexer.MatchString(v.tok.Text)
}

func always(view) bool { return true }
