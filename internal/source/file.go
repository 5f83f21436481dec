package source

import (
	"os"
	"strings"
)

// New builds a File from raw bytes: strips a BOM, folds CRLF and bare CR into LF
// and splits the result into lines without their terminators.
func New(path string, content []byte, flags FileFlags) *File {
	content, hadBOM := removeBOM(content)
	content, normalized := normalizeLineEndings(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if normalized {
		flags |= FileNormalizedCRLF
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		Lines:   splitLines(string(content)),
		Flags:   flags,
	}
}

// FromText wraps an in-memory document, e.g. an editor buffer.
func FromText(name, text string) *File {
	return New(name, []byte(text), FileVirtual)
}

// Load reads a document from disk.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, content, 0), nil
}

// Line returns the zero-based line or "" when out of range.
func (f *File) Line(n int) string {
	if f == nil || n < 0 || n >= len(f.Lines) {
		return ""
	}
	return f.Lines[n]
}

// LineEnd returns the position just past the last character of line n.
func (f *File) LineEnd(n uint32) Position {
	return Position{Line: n, Col: UTF16Len(f.Line(int(n)))}
}

// Text joins the lines back with LF.
func (f *File) Text() string {
	return strings.Join(f.Lines, "\n")
}
