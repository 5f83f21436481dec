package lexer

import (
	"errors"
	"testing"

	"pineapple/internal/source"
	"pineapple/internal/token"
)

func TestZeroWidthMatchIsNoProgress(t *testing.T) {
	lx := New(source.FromText("loop.pineapple", "abc"))
	lx.rules = []rule{
		{name: "empty", emit: true, kind: token.Symbol, typ: token.TypeNone, match: func(string) (int, bool) { return 0, true }},
	}
	toks, err := lx.Tokens()
	if err == nil {
		t.Fatalf("expected no-progress error, got %d tokens", len(toks))
	}
	if !errors.Is(err, ErrNoProgress) {
		t.Fatalf("expected ErrNoProgress, got %v", err)
	}
	var lexErr *Error
	if !errors.As(err, &lexErr) || lexErr.Rule != "empty" {
		t.Fatalf("expected error naming rule \"empty\", got %#v", err)
	}
	if lexErr.Pos != (source.Position{}) || lexErr.Rest != "abc" {
		t.Fatalf("unexpected error position %+v rest %q", lexErr.Pos, lexErr.Rest)
	}
}

func TestScanString(t *testing.T) {
	cases := []struct {
		in string
		n  int
		ok bool
	}{
		{`"abc" tail`, 5, true},
		{`"a\"b"`, 6, true},
		{`"abc`, 0, false},
		{`"abc\`, 0, false},
		{`abc"`, 0, false},
	}
	for _, c := range cases {
		n, ok := scanString(c.in)
		if n != c.n || ok != c.ok {
			t.Errorf("scanString(%q) = (%d, %t), want (%d, %t)", c.in, n, ok, c.n, c.ok)
		}
	}
}

func TestCursorAdvance(t *testing.T) {
	c := NewCursor("😀ab")
	if got := c.Advance(4); got != "😀" {
		t.Fatalf("expected emoji, got %q", got)
	}
	if c.Col != 2 || c.Off != 4 {
		t.Fatalf("unexpected cursor state off=%d col=%d", c.Off, c.Col)
	}
	if r, sz := c.Peek(); r != 'a' || sz != 1 {
		t.Fatalf("unexpected peek %q/%d", r, sz)
	}
	c.Advance(10)
	if !c.EOF() || c.Rest() != "" {
		t.Fatalf("cursor should be at EOF")
	}
}
