package source

import (
	"cmp"
	"fmt"
)

// Span is a half-open range of document positions.
type Span struct {
	Start Position
	End   Position
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// String prints 1-based line:col pairs.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line+1, s.Start.Col+1, s.End.Line+1, s.End.Col+1)
}

// Compare orders positions by line, then column.
func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, other.Col)
}

func (p Position) Less(other Position) bool {
	return p.Compare(other) < 0
}
