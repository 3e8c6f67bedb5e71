// Package token defines lexical token kinds for the VHDL subset accepted by
// internal/lexer.
// Invariants:
//   - Token.Span covers the token's source bytes exactly.
//   - Token.Text is the raw Latin-1 spelling, except for extended
//     identifiers (delimiters stripped, doubled backslashes collapsed) and
//     character literals (the single character between the quotes).
//   - Reserved words are case-insensitive; Text keeps the source spelling.
//   - Reserved words the parser does not use are lexed as Reserved so they
//     can never be mistaken for identifiers.
package token
