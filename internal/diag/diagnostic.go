package diag

import (
	"errors"
	"fmt"

	"pineapple/internal/lexer"
	"pineapple/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Path is the document the diagnostic belongs to, empty for in-memory buffers.
	Path string
}

func (d Diagnostic) String() string {
	if d.Path != "" {
		return fmt.Sprintf("%s:%s: %s %s: %s", d.Path, d.Primary, d.Severity, d.Code.ID(), d.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s", d.Primary, d.Severity, d.Code.ID(), d.Message)
}

// FromLexError converts a lexer failure into an error diagnostic. ok is false
// when err is not a *lexer.Error.
func FromLexError(path string, err error) (d Diagnostic, ok bool) {
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		return Diagnostic{}, false
	}
	code := LexNoMatch
	msg := fmt.Sprintf("no token matches %q", firstRune(lexErr.Rest))
	if errors.Is(lexErr, lexer.ErrNoProgress) {
		code = LexNoProgress
		msg = fmt.Sprintf("rule %q matched without consuming input", lexErr.Rule)
	}
	// подсвечиваем остаток строки от места сбоя
	end := lexErr.Pos
	end.Col += source.UTF16Len(lexErr.Rest)
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Primary:  source.Span{Start: lexErr.Pos, End: end},
		Path:     path,
	}, true
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
