// Package diag defines the diagnostic model shared by the CLI and the
// language server.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string ID
// (LEX1001, ...), a message and the primary source.Span. Producers emit
// through a Reporter; BagReporter collects into a Bag that the CLI sorts and
// renders with internal/diagfmt, while the server converts each item into an
// LSP diagnostic.
//
// The package performs no formatting or IO.
package diag
