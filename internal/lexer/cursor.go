package lexer

import (
	"unicode/utf8"

	"pineapple/internal/source"
)

// Cursor представляет собой позицию внутри одной строки документа.
type Cursor struct {
	Line string
	Off  int    // в байтах
	Col  uint32 // в UTF-16 code units
}

// NewCursor creates a cursor at the start of line.
func NewCursor(line string) Cursor {
	return Cursor{Line: line}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Line)
}

// Rest returns the unconsumed part of the line.
func (c *Cursor) Rest() string {
	if c.EOF() {
		return ""
	}
	return c.Line[c.Off:]
}

// Peek читает текущую руну, если есть, иначе utf8.RuneError и 0
func (c *Cursor) Peek() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.Line[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.Line[c.Off:])
}

// Advance consumes n bytes and moves the column by their UTF-16 width.
func (c *Cursor) Advance(n int) string {
	if n <= 0 {
		return ""
	}
	if c.Off+n > len(c.Line) {
		n = len(c.Line) - c.Off
	}
	text := c.Line[c.Off : c.Off+n]
	c.Off += n
	c.Col += source.UTF16Len(text)
	return text
}
