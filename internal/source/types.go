package source

type (
	// FileFlags encodes metadata about a source document.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the document was added from memory (editor buffer, test, stdin).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the normalized text of a single document split into lines.
type File struct {
	Path    string
	Content []byte
	Lines   []string
	Flags   FileFlags
}

// Position is a zero-based line and a zero-based column in UTF-16 code units,
// the default LSP position encoding.
type Position struct {
	Line uint32
	Col  uint32
}
