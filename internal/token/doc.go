// Package token defines the Pineapple token model shared by the lexer,
// the classifier and the semantic-token encoder.
// Invariants:
//   - Token.Text is the exact source substring that was matched.
//   - Positions are delta-encoded against the previously emitted token;
//     Positions walks them back into absolute coordinates.
//   - Token length is derived from Text in UTF-16 code units and never stored.
//   - The lexer pre-types strings and operators; symbols stay TypeNone until
//     the classifier runs.
package token
