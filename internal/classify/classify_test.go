package classify_test

import (
	"fmt"
	"strings"
	"testing"

	"pineapple/internal/classify"
	"pineapple/internal/lexer"
	"pineapple/internal/source"
	"pineapple/internal/token"
)

type expect struct {
	text string
	typ  token.SemanticType
	mods token.Modifier
}

func classifyText(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(source.FromText("test.pineapple", input))
	if err != nil {
		t.Fatalf("lex %q: %v", input, err)
	}
	classify.Classify(toks)
	return toks
}

func dump(toks []token.Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = fmt.Sprintf("%s:%v", tok.Text, tok.Type)
		if tok.Modifiers != 0 {
			parts[i] += "+" + tok.Modifiers.String()
		}
	}
	return strings.Join(parts, " ")
}

func expectClasses(t *testing.T, input string, want []expect) {
	t.Helper()
	toks := classifyText(t, input)
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %s", len(want), len(toks), dump(toks))
	}
	for i, w := range want {
		got := toks[i]
		if got.Text != w.text || got.Type != w.typ || got.Modifiers != w.mods {
			t.Errorf("token %d: expected %s:%v+%v, got %s:%v+%v\nall: %s",
				i, w.text, w.typ, w.mods, got.Text, got.Type, got.Modifiers, dump(toks))
		}
	}
}

func TestTypeDeclaration(t *testing.T) {
	expectClasses(t, "type Foo { x: Int }", []expect{
		{"type", token.TypeKeyword, 0},
		{"Foo", token.TypeType, token.ModDefinition},
		{"{", token.TypeOperator, 0},
		{"x", token.TypeParameter, 0},
		{":", token.TypeOperator, 0},
		{"Int", token.TypeType, 0},
		{"}", token.TypeOperator, 0},
	})
}

func TestFunctionDeclaration(t *testing.T) {
	// Uppercase wins over the annotation rule, so Int after ':' is a plain type.
	expectClasses(t, "fnc add(a: Int, b: Int) -> Int { }", []expect{
		{"fnc", token.TypeKeyword, 0},
		{"add", token.TypeFunction, token.ModDefinition},
		{"(", token.TypeOperator, 0},
		{"a", token.TypeVariable, 0},
		{":", token.TypeOperator, 0},
		{"Int", token.TypeType, 0},
		{",", token.TypeOperator, 0},
		{"b", token.TypeVariable, 0},
		{":", token.TypeOperator, 0},
		{"Int", token.TypeType, 0},
		{")", token.TypeOperator, 0},
		{"->", token.TypeOperator, 0},
		{"Int", token.TypeType, 0},
		{"{", token.TypeOperator, 0},
		{"}", token.TypeOperator, 0},
	})
}

func TestLowercaseAnnotationInParens(t *testing.T) {
	expectClasses(t, "fnc inc(n: int) -> int", []expect{
		{"fnc", token.TypeKeyword, 0},
		{"inc", token.TypeFunction, token.ModDefinition},
		{"(", token.TypeOperator, 0},
		{"n", token.TypeVariable, 0},
		{":", token.TypeOperator, 0},
		{"int", token.TypeType, token.ModDefaultLibrary},
		{")", token.TypeOperator, 0},
		{"->", token.TypeOperator, 0},
		{"int", token.TypeVariable, 0},
	})
}

func TestTypeDefinitionOnlyAfterTypeKeyword(t *testing.T) {
	toks := classifyText(t, "type Foo\nFoo\nx Foo")
	var seen []token.Modifier
	for _, tok := range toks {
		if tok.Text != "Foo" {
			continue
		}
		if tok.Type != token.TypeType {
			t.Fatalf("Foo must be a type, got %v", tok.Type)
		}
		seen = append(seen, tok.Modifiers)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 Foo tokens, got %d", len(seen))
	}
	if seen[0] != token.ModDefinition || seen[1] != 0 || seen[2] != 0 {
		t.Fatalf("unexpected modifiers %v", seen)
	}
}

func TestCallSiteIsFunctionDefinition(t *testing.T) {
	expectClasses(t, "add(1, x)", []expect{
		{"add", token.TypeFunction, token.ModDefinition},
		{"(", token.TypeOperator, 0},
		{"1", token.TypeNumber, 0},
		{",", token.TypeOperator, 0},
		{"x", token.TypeVariable, 0},
		{")", token.TypeOperator, 0},
	})
}

func TestUppercaseBeforeParenStaysType(t *testing.T) {
	expectClasses(t, "Point(x)", []expect{
		{"Point", token.TypeType, 0},
		{"(", token.TypeOperator, 0},
		{"x", token.TypeVariable, 0},
		{")", token.TypeOperator, 0},
	})
}

func TestKeywordBeatsEverything(t *testing.T) {
	// "type" before "(" would otherwise be a function
	expectClasses(t, "type(", []expect{
		{"type", token.TypeKeyword, 0},
		{"(", token.TypeOperator, 0},
	})
}

func TestNumbersAndStrings(t *testing.T) {
	expectClasses(t, `x = 3.14 + "s" + 3px`, []expect{
		{"x", token.TypeVariable, 0},
		{"=", token.TypeOperator, 0},
		{"3", token.TypeNumber, 0},
		{".", token.TypeOperator, 0},
		{"14", token.TypeNumber, 0},
		{"+", token.TypeOperator, 0},
		{`"s"`, token.TypeString, 0},
		{"+", token.TypeOperator, 0},
		{"3px", token.TypeNumber, 0},
	})
}

func TestStringBeforeParenFollowsRuleOrder(t *testing.T) {
	expectClasses(t, `"s"(`, []expect{
		{`"s"`, token.TypeFunction, token.ModDefinition},
		{"(", token.TypeOperator, 0},
	})
}

func TestBracketFlagsAreNotAStack(t *testing.T) {
	// the inner '}' clears "inside braces" for the outer block too
	toks := classifyText(t, "{ { } y: Int }")
	for _, tok := range toks {
		if tok.Text == "y" && tok.Type != token.TypeVariable {
			t.Fatalf("y after a closed inner brace should be a variable, got %v", tok.Type)
		}
	}
	toks = classifyText(t, "{ { y: Int } }")
	for _, tok := range toks {
		if tok.Text == "y" && tok.Type != token.TypeParameter {
			t.Fatalf("y inside braces should be a parameter, got %v", tok.Type)
		}
	}
}

func TestFirstTokenHasNoPrevious(t *testing.T) {
	// a trailing "fnc" must not make the first token a function
	expectClasses(t, "x\nfnc", []expect{
		{"x", token.TypeVariable, 0},
		{"fnc", token.TypeKeyword, 0},
	})
}

func TestExplainNamesRules(t *testing.T) {
	toks, err := lexer.Lex(source.FromText("e.pineapple", `type Foo { x: Int } fnc f(a: int) 1 "s" v`))
	if err != nil {
		t.Fatal(err)
	}
	fired := classify.Explain(toks)
	byText := map[string]string{}
	for i, tok := range toks {
		byText[tok.Text] = fired[i]
	}
	want := map[string]string{
		"type": "keyword",
		"Foo":  "type",
		"{":    "operator",
		"x":    "parameter",
		"f":    "function",
		"int":  "annotation",
		"1":    "number",
		`"s"`:  "string",
		"v":    "variable",
	}
	for text, rule := range want {
		if byText[text] != rule {
			t.Errorf("%q: expected rule %q, got %q", text, rule, byText[text])
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	toks := classifyText(t, "type Foo { x: Int }\nfnc add(a: int) -> Int { add(a) }")
	first := append([]token.Token(nil), toks...)
	classify.Classify(toks)
	for i := range toks {
		if toks[i] != first[i] {
			t.Fatalf("token %d changed on second pass: %+v vs %+v", i, first[i], toks[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	classify.Classify(nil)
	if got := classify.Explain(nil); len(got) != 0 {
		t.Fatalf("expected no rules, got %v", got)
	}
}
