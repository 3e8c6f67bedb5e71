package lexer

import (
	"strings"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/token"
)

// scanBasicIdent сканирует basic identifier и проверяет его на зарезервированные слова.
// The token text is the exact source spelling.
func (lx *Lexer) scanBasicIdent() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && ident.IsBasicChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	if _, err := ident.FromLatin1(text, false); err != nil {
		lx.report(diag.LexBadBasicID, sp, "malformed basic identifier "+ident.PrettyLatin1(text))
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanExtIdent сканирует \extended identifier\. A doubled backslash stands
// for one backslash; the closing delimiter must appear on the same line.
func (lx *Lexer) scanExtIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\'

	var b strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedExtID, sp, "unterminated extended identifier")
			return token.Token{Kind: token.Invalid, Span: sp, Text: b.String()}
		}
		c := lx.cursor.Bump()
		if c == '\\' {
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				b.WriteByte('\\')
				continue
			}
			break
		}
		if !ident.IsExtendedChar(c) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexControlCharInExtID, sp,
				"character "+ident.PrettyByte(c)+" is not allowed in an extended identifier")
		}
		b.WriteByte(c)
	}

	sp := lx.cursor.SpanFrom(start)
	if b.Len() == 0 {
		lx.report(diag.LexEmptyExtID, sp, "extended identifier must not be empty")
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	return token.Token{Kind: token.ExtIdent, Span: sp, Text: b.String()}
}

func isLetter(b byte) bool {
	return ident.IsBasicChar(b) && !isDigit(b) && b != '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
