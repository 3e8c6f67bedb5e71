package lexer

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/token"
)

var compoundDelims = [...]string{"=>", "**", ":=", "/=", ">=", "<=", "<>", "??", "?=", "?/=", "?<", "?<=", "?>", "?>=", "<<", ">>"}

var singleDelims = map[byte]token.Kind{
	';': token.Semicolon,
	':': token.Colon,
	',': token.Comma,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
}

// scanDelimiter сканирует разделители; составные выбираются по самому длинному совпадению.
func (lx *Lexer) scanDelimiter() token.Token {
	start := lx.cursor.Mark()
	c := lx.cursor.Peek()

	best := ""
	for _, d := range compoundDelims {
		if len(d) > len(best) && lx.cursor.HasPrefix(d) {
			best = d
		}
	}
	if best != "" {
		lx.cursor.Advance(len(best))
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Delimiter, Span: sp, Text: best}
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	if k, ok := singleDelims[c]; ok {
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}
	switch c {
	case '&', '\'', '*', '+', '-', '/', '<', '=', '>', '|', '[', ']', '?', '@', '`':
		return token.Token{Kind: token.Delimiter, Span: sp, Text: lx.text(sp)}
	}
	lx.report(diag.LexUnknownChar, sp, "unexpected character "+ident.PrettyByte(c))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
