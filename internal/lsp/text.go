package lsp

import (
	"strings"
	"unicode/utf8"
)

// applyChanges applies didChange events in order. A change without a range
// replaces the whole text.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// lineBreak finds the first line terminator in s (\r\n, \r or \n) and
// returns its offset and width, or -1 when there is none.
func lineBreak(s string) (int, int) {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return -1, 0
	}
	if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
		return i, 2
	}
	return i, 1
}

// offsetForPosition converts a (line, UTF-16 column) pair to a byte offset,
// clamping to the line end and to the end of text.
func offsetForPosition(text string, pos position) int {
	i := 0
	for line := uint32(0); line < pos.Line; line++ {
		at, width := lineBreak(text[i:])
		if at < 0 {
			return len(text)
		}
		i += at + width
	}
	end := len(text)
	if at, _ := lineBreak(text[i:]); at >= 0 {
		end = i + at
	}
	var units uint32
	for i < end {
		r, size := utf8.DecodeRuneInString(text[i:])
		need := uint32(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}

// lineAt returns line n of text without its terminator, "" when out of range.
func lineAt(text string, n uint32) string {
	for ; n > 0; n-- {
		at, width := lineBreak(text)
		if at < 0 {
			return ""
		}
		text = text[at+width:]
	}
	if at, _ := lineBreak(text); at >= 0 {
		text = text[:at]
	}
	return text
}
