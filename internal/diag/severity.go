package diag

import "go.lsp.dev/protocol"

// Severity is ordered: a larger value is more serious.
type Severity uint8

const (
	SevHint Severity = iota
	SevInfo
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevHint:    "HINT",
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Protocol maps the severity onto the LSP wire enum.
func (s Severity) Protocol() protocol.DiagnosticSeverity {
	switch s {
	case SevError:
		return protocol.DiagnosticSeverityError
	case SevWarning:
		return protocol.DiagnosticSeverityWarning
	case SevHint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
