// Package token defines lexical token kinds for the list-text notation.
// Invariants:
//   - Token.Text is copied out of the original source slice.
//   - Token.Span matches Text exactly (Begin..End).
//   - Numeric kinds follow the reference scanner: a decimal with a fractional
//     part is FloatLit, a bare integer is IntLit; a run that looks numeric but
//     is not terminated by whitespace or ')' is a Symbol.
//   - The grammar has no comments, so there is no trivia channel.
package token
