package lexer

import (
	"pineapple/internal/source"
	"pineapple/internal/token"
)

// Lexer turns the lines of one document into a flat token stream.
type Lexer struct {
	file  *source.File
	rules []rule

	// база для дельт - начало последнего выпущенного токена
	prevLine uint32
	prevCol  uint32
	out      []token.Token
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:  file,
		rules: defaultRules,
	}
}

// Lex is a shortcut for New(file).Tokens().
func Lex(file *source.File) ([]token.Token, error) {
	return New(file).Tokens()
}

// Tokens lexes the whole document. On failure it returns a *Error and no
// tokens.
func (lx *Lexer) Tokens() ([]token.Token, error) {
	lx.out = lx.out[:0]
	lx.prevLine, lx.prevCol = 0, 0
	for i, line := range lx.file.Lines {
		lineNo := uint32(i) // #nosec G115 -- line count is bounded by document size
		if err := lx.lexLine(lineNo, line); err != nil {
			return nil, err
		}
	}
	out := make([]token.Token, len(lx.out))
	copy(out, lx.out)
	return out, nil
}

func (lx *Lexer) lexLine(lineNo uint32, line string) error {
	cur := NewCursor(line)
	for !cur.EOF() {
		left := len(cur.Line) - cur.Off
		matched := ""
		for _, r := range lx.rules {
			n, ok := r.match(cur.Rest())
			if !ok {
				continue
			}
			matched = r.name
			start := cur.Col
			text := cur.Advance(n)
			if r.emit {
				lx.emit(lineNo, start, text, r)
			}
			break
		}
		if matched == "" {
			return &Error{
				Kind: ErrNoMatch,
				Pos:  source.Position{Line: lineNo, Col: cur.Col},
				Rest: cur.Rest(),
			}
		}
		// защита от бесконечного цикла
		if len(cur.Line)-cur.Off >= left {
			return &Error{
				Kind: ErrNoProgress,
				Pos:  source.Position{Line: lineNo, Col: cur.Col},
				Rest: cur.Rest(),
				Rule: matched,
			}
		}
	}
	return nil
}

func (lx *Lexer) emit(lineNo, col uint32, text string, r rule) {
	tok := token.Token{
		Kind:      r.kind,
		LineDelta: lineNo - lx.prevLine,
		Text:      text,
		Type:      r.typ,
	}
	// новая строка - колонка считается от её начала
	if tok.LineDelta == 0 {
		tok.ColDelta = col - lx.prevCol
	} else {
		tok.ColDelta = col
	}
	lx.out = append(lx.out, tok)
	lx.prevLine = lineNo
	lx.prevCol = col
}
