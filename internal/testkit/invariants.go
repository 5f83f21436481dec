// Package testkit holds structural checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"
	"slices"
	"unicode/utf16"

	"pineapple/internal/source"
	"pineapple/internal/token"
)

// CheckTokens verifies a lexed token stream against its file:
// 1) every token is non-empty and sits inside an existing line
// 2) the line text at the token's UTF-16 range is exactly Token.Text
// 3) tokens are in document order and never overlap
func CheckTokens(file *source.File, toks []token.Token) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	var prevEnd source.Position
	for i, pos := range token.Positions(toks) {
		tok := toks[i]
		if tok.Text == "" {
			return fmt.Errorf("token %d at %d:%d is empty", i, pos.Line, pos.Col)
		}
		if int(pos.Line) >= len(file.Lines) {
			return fmt.Errorf("token %d %q on line %d, file has %d lines", i, tok.Text, pos.Line, len(file.Lines))
		}
		line := utf16.Encode([]rune(file.Line(int(pos.Line))))
		want := utf16.Encode([]rune(tok.Text))
		end := int(pos.Col) + len(want)
		if end > len(line) {
			return fmt.Errorf("token %d %q runs past the end of line %d", i, tok.Text, pos.Line)
		}
		if !slices.Equal(line[pos.Col:end], want) {
			return fmt.Errorf("token %d %q does not match source %q", i, tok.Text, string(utf16.Decode(line[pos.Col:end])))
		}
		if i > 0 && pos.Less(prevEnd) {
			return fmt.Errorf("token %d %q at %d:%d overlaps the previous token", i, tok.Text, pos.Line, pos.Col)
		}
		prevEnd = source.Position{Line: pos.Line, Col: uint32(end)} // #nosec G115 -- bounded by line length
	}
	return nil
}

// CheckClassified verifies that classification left no token untyped and
// used only known modifier bits.
func CheckClassified(toks []token.Token) error {
	const known = token.ModDeprecated | token.ModReadonly | token.ModDefaultLibrary | token.ModDefinition
	for i, tok := range toks {
		if tok.Type == token.TypeNone {
			return fmt.Errorf("token %d %q has no semantic type", i, tok.Text)
		}
		if tok.Modifiers&^known != 0 {
			return fmt.Errorf("token %d %q has unknown modifier bits %b", i, tok.Text, tok.Modifiers)
		}
	}
	return nil
}

// CheckEncoding verifies that data is the five-integer wire form of toks.
func CheckEncoding(toks []token.Token, data []uint32) error {
	if len(data) != 5*len(toks) {
		return fmt.Errorf("expected %d integers for %d tokens, got %d", 5*len(toks), len(toks), len(data))
	}
	for i, tok := range toks {
		typ := tok.Type
		if typ == token.TypeNone {
			typ = token.TypeVariable
		}
		got := data[5*i : 5*i+5]
		want := []uint32{tok.LineDelta, tok.ColDelta, tok.Length(), uint32(typ), uint32(tok.Modifiers)}
		if !slices.Equal(got, want) {
			return fmt.Errorf("token %d %q encoded as %v, want %v", i, tok.Text, got, want)
		}
	}
	return nil
}
