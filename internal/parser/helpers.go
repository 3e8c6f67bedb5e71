package parser

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
	"vhdlsema/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	p.prev = tok.Kind
	return tok
}

// getDiagnosticSpan: возвращает лучший span для диагностики.
// На EOF используем позицию сразу после последнего токена.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect: ожидаем конкретный токен. Если его нет, репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diagSpan, msg+", got "+p.describe(p.lx.Peek()))
	return token.Token{Kind: token.Invalid, Span: diagSpan}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) bool {
	p.opts.CurrentErrors++
	// лексер уже сообщил о битом токене
	if p.at(token.Invalid) {
		return false
	}
	if p.opts.Reporter != nil && !p.opts.Enough() {
		p.opts.Reporter.Report(diag.NewError(code, sp, msg))
		return true
	}
	return false
}

// resyncUntil прокручивает токены до одного из stop (не съедая его) или EOF.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(stop...) {
		p.advance()
	}
}

// parseIdent: ожидает basic или extended identifier и строит лист.
func (p *Parser) parseIdent() (*parsetree.Node, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return parsetree.Leaf(parsetree.TagBasicID, tok.Span, tok.Text), true
	case token.ExtIdent:
		p.advance()
		return parsetree.Leaf(parsetree.TagExtID, tok.Span, tok.Text), true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+p.describe(tok))
	return nil, false
}

func (p *Parser) describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.ExtIdent:
		return "\\" + ident.PrettyLatin1(tok.Text) + "\\"
	case token.CharLit:
		return "'" + ident.PrettyLatin1(tok.Text) + "'"
	}
	if tok.Text == "" {
		return tok.Kind.String()
	}
	return "\"" + ident.PrettyLatin1(tok.Text) + "\""
}
