// Package trace records phase boundaries of the tokenizer pipeline and of
// the language server request loop.
//
// # Usage
//
//	pineapple tokenize --trace=- --trace-level=phase file.pineapple
//	pineapple lsp --trace=/tmp/pineapple.trace --trace-level=detail
//
// Spans nest by parent ID:
//
//	span := trace.Begin(t, trace.ScopePhase, "lex", parent.ID())
//	defer span.End("")
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: only failed spans
//   - LevelPhase: requests and pipeline phases
//   - LevelDetail: per-document events
//   - LevelDebug: everything
//
// The server can switch a tracer on and off at runtime through the client
// setting pineapple.lsp.trace; see Switch.
package trace
