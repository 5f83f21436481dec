package token_test

import (
	"testing"

	"pineapple/internal/source"
	"pineapple/internal/token"
)

func TestIsKeywordText(t *testing.T) {
	for _, kw := range []string{"type", "fnc"} {
		if !token.IsKeywordText(kw) {
			t.Fatalf("%q should be a keyword", kw)
		}
	}
	// регистр важен
	for _, s := range []string{"Type", "FNC", "fn", "func", "types"} {
		if token.IsKeywordText(s) {
			t.Fatalf("%q must not be a keyword", s)
		}
	}
}

func TestSemanticTypeOrder(t *testing.T) {
	want := []string{"keyword", "variable", "function", "operator", "parameter", "type", "string", "number"}
	got := token.SemanticTypes()
	if len(got) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(got))
	}
	for i, st := range got {
		if int(st) != i {
			t.Fatalf("type %v has index %d, want %d", st, int(st), i)
		}
		if st.String() != want[i] {
			t.Fatalf("type %d: expected %q, got %q", i, want[i], st.String())
		}
	}
	if token.TypeNone.String() != "none" {
		t.Fatalf("unexpected TypeNone name %q", token.TypeNone.String())
	}
}

func TestModifierBits(t *testing.T) {
	cases := []struct {
		mod  token.Modifier
		bits uint32
		name string
	}{
		{token.ModDeprecated, 1, "deprecated"},
		{token.ModReadonly, 2, "readonly"},
		{token.ModDefaultLibrary, 4, "defaultLibrary"},
		{token.ModDefinition, 8, "definition"},
	}
	for _, tc := range cases {
		if uint32(tc.mod) != tc.bits {
			t.Errorf("%s: expected bit %d, got %d", tc.name, tc.bits, uint32(tc.mod))
		}
		if tc.mod.String() != tc.name {
			t.Errorf("expected name %q, got %q", tc.name, tc.mod.String())
		}
	}
	set := token.ModDefinition | token.ModDeprecated
	if set.String() != "deprecated|definition" {
		t.Fatalf("unexpected set rendering %q", set.String())
	}
	if !set.Has(token.ModDefinition) || set.Has(token.ModReadonly) {
		t.Fatalf("Has reported wrong membership for %v", set)
	}
}

func TestPositionsWalksDeltas(t *testing.T) {
	toks := []token.Token{
		{Text: "type", LineDelta: 0, ColDelta: 0},
		{Text: "Foo", LineDelta: 0, ColDelta: 5},
		{Text: "x", LineDelta: 2, ColDelta: 4},
		{Text: ":", LineDelta: 0, ColDelta: 1},
	}
	got := token.Positions(toks)
	want := []source.Position{{Line: 0, Col: 0}, {Line: 0, Col: 5}, {Line: 2, Col: 4}, {Line: 2, Col: 5}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLengthCountsUTF16(t *testing.T) {
	tok := token.Token{Text: `"😀"`}
	if tok.Length() != 4 {
		t.Fatalf("expected length 4, got %d", tok.Length())
	}
}
