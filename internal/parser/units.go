package parser

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/token"
)

// entity X is [decls] [begin] end [entity] [X];
func (p *Parser) parseEntity() (*parsetree.Node, bool) {
	start := p.advance().Span
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwIs, diag.SynExpectIs, "expected 'is' after entity name"); !ok {
		return nil, false
	}
	decls, ok := p.parseDeclarationList()
	if !ok {
		return nil, false
	}
	if p.at(token.KwBegin) {
		p.advance()
	}
	trailer, ok := p.parseEnd(token.KwEntity, "entity")
	if !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagEntity, start.Cover(p.lastSpan), name, nil, decls, nil, trailer), true
}

// package P is [decls] end [package] [P];
// package body P is [decls] end [package body] [P];
func (p *Parser) parsePackage() (*parsetree.Node, bool) {
	start := p.advance().Span
	body := false
	if p.at(token.KwBody) {
		p.advance()
		body = true
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwIs, diag.SynExpectIs, "expected 'is' after package name"); !ok {
		return nil, false
	}
	decls, ok := p.parseDeclarationList()
	if !ok {
		return nil, false
	}
	trailer, ok := p.parseEnd(token.KwPackage, "package")
	if !ok {
		return nil, false
	}
	n := parsetree.New(parsetree.TagPackage, start.Cover(p.lastSpan), name, decls, trailer)
	n.Flag = body
	return n, true
}

// architecture A of E is [decls] begin end [architecture] [A];
func (p *Parser) parseArchitecture() (*parsetree.Node, bool) {
	start := p.advance().Span
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwOf, diag.SynUnexpectedToken, "expected 'of' after architecture name"); !ok {
		return nil, false
	}
	entity, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwIs, diag.SynExpectIs, "expected 'is' after entity name"); !ok {
		return nil, false
	}
	decls, ok := p.parseDeclarationList()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwBegin, diag.SynUnexpectedToken, "expected 'begin'"); !ok {
		return nil, false
	}
	trailer, ok := p.parseEnd(token.KwArchitecture, "architecture")
	if !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagArchitecture, start.Cover(p.lastSpan), name, entity, decls, nil, trailer), true
}

// parseEnd разбирает `end [kw] [name] ;` и возвращает повторённое имя или nil.
// A 'package body' trailer is accepted for packages.
func (p *Parser) parseEnd(kw token.Kind, what string) (*parsetree.Node, bool) {
	if _, ok := p.expect(token.KwEnd, diag.SynExpectEnd, "expected 'end'"); !ok {
		return nil, false
	}
	switch {
	case p.at(kw):
		p.advance()
		if kw == token.KwPackage && p.at(token.KwBody) {
			p.advance()
		}
	case p.atOr(token.KwEntity, token.KwPackage, token.KwArchitecture):
		p.err(diag.SynEndKeywordMismatch, "'end' of "+what+" closed with "+p.describe(p.lx.Peek()))
		return nil, false
	}
	var trailer *parsetree.Node
	if p.atOr(token.Ident, token.ExtIdent) {
		trailer, _ = p.parseIdent()
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'end'"); !ok {
		return nil, false
	}
	return trailer, true
}
