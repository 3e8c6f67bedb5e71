package lexer

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/token"
)

// isCharLit decides whether a tick starts a character literal. After a name
// or a closing paren the tick is an attribute mark; `'x'` is a literal
// anywhere else.
func (lx *Lexer) isCharLit() bool {
	switch lx.last {
	case token.Ident, token.ExtIdent, token.RParen, token.KwAll:
		return false
	}
	return lx.cursor.Peek() == '\'' && lx.cursor.PeekAt(2) == '\''
}

func (lx *Lexer) scanCharLit() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	c := lx.cursor.Bump()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	if c < 0x20 || c == 0x7F || (c >= 0x80 && c <= 0x9F) {
		lx.report(diag.LexUnterminatedCharLit, sp, "character literal must be a graphic character")
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	return token.Token{Kind: token.CharLit, Span: sp, Text: string([]byte{c})}
}

// scanString сканирует "..." с удвоенной кавычкой внутри.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	out := make([]byte, 0, 16)
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp}
		}
		c := lx.cursor.Bump()
		if c == '"' {
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				out = append(out, '"')
				continue
			}
			break
		}
		out = append(out, c)
	}
	return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(start), Text: string(out)}
}

// scanNumber сканирует abstract literal грубо: цифры, буквы, '_', '.', '#'.
// Only the extent matters since the grammar subset has no expressions.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDigit(b) || isLetter(b) || b == '_' || b == '.' || b == '#' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}
