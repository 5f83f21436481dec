package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"pineapple/internal/semtok"
	"pineapple/internal/token"
)

// TokenOutput is one token with its absolute position, as written by the
// json and msgpack formats.
type TokenOutput struct {
	Line      uint32   `json:"line" msgpack:"line"`
	Col       uint32   `json:"col" msgpack:"col"`
	Length    uint32   `json:"length" msgpack:"length"`
	Text      string   `json:"text" msgpack:"text"`
	Kind      string   `json:"kind" msgpack:"kind"`
	Type      string   `json:"type" msgpack:"type"`
	Modifiers []string `json:"modifiers,omitempty" msgpack:"modifiers,omitempty"`
}

// FileTokens groups the output for one file.
type FileTokens struct {
	Path   string        `json:"path" msgpack:"path"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
	Error  string        `json:"error,omitempty" msgpack:"error,omitempty"`
}

// TokenOutputs resolves deltas into absolute positions.
func TokenOutputs(toks []token.Token) []TokenOutput {
	positions := token.Positions(toks)
	out := make([]TokenOutput, 0, len(toks))
	for i, tok := range toks {
		var mods []string
		for _, m := range token.Modifiers() {
			if tok.Modifiers.Has(m) {
				mods = append(mods, m.String())
			}
		}
		out = append(out, TokenOutput{
			Line:      positions[i].Line,
			Col:       positions[i].Col,
			Length:    tok.Length(),
			Text:      tok.Text,
			Kind:      tok.Kind.String(),
			Type:      tok.Type.String(),
			Modifiers: mods,
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// номер, позиция (1-based), тип, модификаторы, текст.
func FormatTokensPretty(w io.Writer, toks []token.Token, opts TokenOpts) error {
	p := palette{enabled: opts.Color}
	for i, out := range TokenOutputs(toks) {
		pos := fmt.Sprintf("%d:%d", out.Line+1, out.Col+1)
		typ := p.semantic(toks[i].Type, runewidth.FillRight(out.Type, 10))
		text := strconv.Quote(out.Text)
		if opts.Width > 0 && runewidth.StringWidth(text) > opts.Width {
			text = runewidth.Truncate(text, opts.Width, "...")
		}
		line := fmt.Sprintf("%4d: %s %s %s", i+1, runewidth.FillRight(pos, 8), typ, text)
		if toks[i].Modifiers != 0 {
			line += " " + p.paint(colorModifier, "["+toks[i].Modifiers.String()+"]")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, files []FileTokens) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}

// FormatTokensMsgpack writes the same structure as FormatTokensJSON in
// MessagePack.
func FormatTokensMsgpack(w io.Writer, files []FileTokens) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(files)
}

// FormatTokensData prints the encoded semantic token payload, one token
// (five integers) per line. A trailing partial group is skipped.
func FormatTokensData(w io.Writer, data []uint32) error {
	for _, g := range semtok.Decode(data) {
		if _, err := fmt.Fprintf(w, "%d %d %d %d %d\n", g.LineDelta, g.ColDelta, g.Length, uint32(g.Type), uint32(g.Modifiers)); err != nil {
			return err
		}
	}
	return nil
}
