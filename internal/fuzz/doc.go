// Package fuzztests houses Go fuzz harnesses for the tokenization pipeline
// (source -> lexer -> classifier -> encoder). They guard against panics and
// check the structural invariants from testkit on arbitrary input.
//
// Запуск: go test ./internal/fuzz -fuzz=FuzzPipeline
package fuzztests
