package parser

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/token"
)

// parseDeclarationList разбирает type/subtype declarations до begin/end.
// Returns nil for an empty declarative part. A bad declaration is skipped up
// to its ';' so later ones are still checked.
func (p *Parser) parseDeclarationList() (*parsetree.Node, bool) {
	var list *parsetree.Node
	ok := true
	for {
		var (
			decl   *parsetree.Node
			declOK bool
		)
		switch p.lx.Peek().Kind {
		case token.KwType:
			decl, declOK = p.parseTypeDeclaration()
		case token.KwSubtype:
			decl, declOK = p.parseSubtypeDeclaration()
		case token.KwBegin, token.KwEnd:
			return list, ok
		default:
			p.err(diag.SynUnexpectedToken, "expected declaration, 'begin' or 'end', got "+p.describe(p.lx.Peek()))
			return nil, false
		}
		if !declOK {
			ok = false
			p.resyncUntil(token.Semicolon, token.KwBegin, token.KwEnd)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		list = parsetree.AppendList(list, parsetree.TagDeclarationList, decl)
	}
}

// type T is (a, 'b', c);
func (p *Parser) parseTypeDeclaration() (*parsetree.Node, bool) {
	start := p.advance().Span
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwIs, diag.SynExpectIs, "expected 'is' after type name"); !ok {
		return nil, false
	}
	if !p.at(token.LParen) {
		p.err(diag.SynExpectTypeDef, "only enumeration type definitions are supported, got "+p.describe(p.lx.Peek()))
		return nil, false
	}
	def, ok := p.parseEnumerationTypeDefinition()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after type declaration"); !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagFullTypeDeclaration, start.Cover(p.lastSpan), name, def), true
}

func (p *Parser) parseEnumerationTypeDefinition() (*parsetree.Node, bool) {
	open := p.advance().Span
	var lits *parsetree.Node
	for {
		tok := p.lx.Peek()
		var lit *parsetree.Node
		switch tok.Kind {
		case token.Ident:
			lit = parsetree.Leaf(parsetree.TagBasicID, tok.Span, tok.Text)
		case token.ExtIdent:
			lit = parsetree.Leaf(parsetree.TagExtID, tok.Span, tok.Text)
		case token.CharLit:
			lit = parsetree.Char(tok.Span, tok.Text[0])
		default:
			p.err(diag.SynExpectEnumLiteral, "expected enumeration literal, got "+p.describe(tok))
			return nil, false
		}
		p.advance()
		lits = parsetree.AppendList(lits, parsetree.TagEnumLiteralList, lit)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if !p.at(token.RParen) {
		if p.atOr(token.Semicolon, token.EOF) {
			p.report(diag.SynUnclosedParen, open, "unclosed '(' in enumeration type definition")
		} else {
			p.err(diag.SynExpectRightParen, "expected ',' or ')', got "+p.describe(p.lx.Peek()))
		}
		return nil, false
	}
	p.advance()
	return parsetree.New(parsetree.TagEnumerationTypeDefinition, open.Cover(p.lastSpan), lits), true
}

// subtype S is T;
func (p *Parser) parseSubtypeDeclaration() (*parsetree.Node, bool) {
	start := p.advance().Span
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwIs, diag.SynExpectIs, "expected 'is' after subtype name"); !ok {
		return nil, false
	}
	mark, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after subtype indication"); !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagSubtypeDeclaration, start.Cover(p.lastSpan), name, mark), true
}
