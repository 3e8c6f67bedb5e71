// Package lexer turns a Latin-1 VHDL source file into tokens.
package lexer

import (
	"vhdlsema/internal/source"
	"vhdlsema/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	errors int
	last   token.Kind
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isLetter(ch):
		tok = lx.scanBasicIdent()
	case ch == '\\':
		tok = lx.scanExtIdent()
	case isDigit(ch):
		tok = lx.scanNumber()
	case ch == '\'' && lx.isCharLit():
		tok = lx.scanCharLit()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanDelimiter()
	}

	lx.last = tok.Kind
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Errors reports how many lexical errors were found so far.
func (lx *Lexer) Errors() int { return lx.errors }

// EmptySpan is a zero-width span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.cursor.Here()
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
