package lexer

import (
	"errors"
	"fmt"

	"pineapple/internal/source"
)

var (
	// ErrNoMatch means no lexical rule accepts the text at the cursor.
	ErrNoMatch = errors.New("no lexical rule matches")
	// ErrNoProgress means a rule matched without consuming anything.
	ErrNoProgress = errors.New("lexer made no progress")
)

// Error reports where lexing stopped. Kind is ErrNoMatch or ErrNoProgress.
type Error struct {
	Kind error
	Pos  source.Position
	Rest string
	Rule string // правило, не сдвинувшее курсор (только для ErrNoProgress)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v: %q", e.Pos.Line+1, e.Pos.Col+1, e.Kind, e.Rest)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
