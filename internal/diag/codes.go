package diag

import "fmt"

// Code identifies a diagnostic. The thousand it falls into selects the
// prefix of its ID: 1xxx lexer, 4xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	LexInfo       Code = 1000
	LexNoMatch    Code = 1001
	LexNoProgress Code = 1002

	IOLoadFileError Code = 4001
)

var codeGroups = map[int]string{
	1: "LEX",
	4: "IO",
}

var codeTitles = map[Code]string{
	LexInfo:         "lexer information",
	LexNoMatch:      "no lexer rule matches",
	LexNoProgress:   "lexer rule consumed nothing",
	IOLoadFileError: "cannot read source file",
}

// ID renders the code as LEX1001, IO4001 and so on; codes outside a known
// group collapse to E0000.
func (c Code) ID() string {
	prefix, ok := codeGroups[int(c)/1000]
	if !ok || c == UnknownCode {
		return "E0000"
	}
	return fmt.Sprintf("%s%04d", prefix, int(c))
}

func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return "unknown diagnostic"
}

func (c Code) String() string {
	return c.ID() + " " + c.Title()
}
