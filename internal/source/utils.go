package source

import (
	"bytes"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// normalizeLineEndings folds \r\n and a bare \r into \n, the way LSP
// clients split lines.
func normalizeLineEndings(content []byte) ([]byte, bool) {
	if !bytes.ContainsRune(content, '\r') {
		return content, false
	}
	out := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n")), true
}

// removeBOM strips a leading byte order mark. UTF-16 documents are
// transcoded to UTF-8 on the way; undecodable ones are left untouched.
func removeBOM(content []byte) ([]byte, bool) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):], true
	case bytes.HasPrefix(content, bomUTF16LE), bytes.HasPrefix(content, bomUTF16BE):
		dec := xunicode.BOMOverride(transform.Nop)
		out, _, err := transform.Bytes(dec, content)
		if err != nil {
			return content, false
		}
		return out, true
	}
	return content, false
}

// splitLines режет текст по '\n'. Пустой документ - одна пустая строка,
// завершающий '\n' даёт пустую последнюю строку (как у редактора).
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// UTF16Len returns the length of s in UTF-16 code units. Invalid bytes
// count as one unit each, like U+FFFD.
func UTF16Len(s string) uint32 {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return ^uint32(0)
	}
	return v
}

func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
