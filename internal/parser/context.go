package parser

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/token"
)

// parseContextClause разбирает последовательность library/use clauses.
func (p *Parser) parseContextClause() (*parsetree.Node, bool) {
	var list *parsetree.Node
	for p.atOr(token.KwLibrary, token.KwUse) {
		var (
			item *parsetree.Node
			ok   bool
		)
		if p.at(token.KwLibrary) {
			item, ok = p.parseLibraryClause()
		} else {
			item, ok = p.parseUseClause()
		}
		if !ok {
			return nil, false
		}
		list = parsetree.AppendList(list, parsetree.TagContextClause, item)
	}
	return list, true
}

// library a, b;
func (p *Parser) parseLibraryClause() (*parsetree.Node, bool) {
	start := p.advance().Span
	var names *parsetree.Node
	for {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		names = parsetree.AppendList(names, parsetree.TagIDList, id)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after library clause"); !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagLibraryClause, start.Cover(p.lastSpan), names), true
}

// use a.b.all, c.d;
func (p *Parser) parseUseClause() (*parsetree.Node, bool) {
	start := p.advance().Span
	var names *parsetree.Node
	for {
		name, ok := p.parseSelectedName()
		if !ok {
			return nil, false
		}
		names = parsetree.AppendList(names, parsetree.TagIDList, name)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after use clause"); !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagUseClause, start.Cover(p.lastSpan), names), true
}

// parseSelectedName строит левостороннюю цепочку TagName; суффикс `all`
// хранится как basic id с Flag=true.
func (p *Parser) parseSelectedName() (*parsetree.Node, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	for p.at(token.Dot) {
		p.advance()
		if p.at(token.KwAll) {
			tok := p.advance()
			all := parsetree.Leaf(parsetree.TagBasicID, tok.Span, tok.Text)
			all.Flag = true
			return parsetree.AppendList(name, parsetree.TagName, all), true
		}
		suffix, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		name = parsetree.AppendList(name, parsetree.TagName, suffix)
	}
	return name, true
}
