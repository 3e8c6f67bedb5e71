// Package parser builds parsetree nodes for the VHDL subset the analyser
// understands: context clauses, entities, packages and architectures whose
// declarative parts hold enumeration type and subtype declarations.
package parser

import (
	"slices"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/lexer"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
	"vhdlsema/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result of parsing one file. Tree is nil whenever the lexer or the parser
// reported an error.
type Result struct {
	Tree   *parsetree.Node
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	prev     token.Kind
}

// ParseFile: входная точка для разбора одного файла.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	tree := p.parseDesignFile()
	errs := p.opts.CurrentErrors
	if n := lx.Errors(); n > 0 {
		errs += uint(n)
	}
	if errs > 0 {
		tree = nil
	}
	return Result{Tree: tree, Errors: errs}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseDesignFile: основной цикл верхнего уровня, вызывает parseDesignUnit до EOF.
func (p *Parser) parseDesignFile() *parsetree.Node {
	if p.at(token.EOF) {
		p.err(diag.SynEmptyDesignFile, "design file contains no design units")
		return nil
	}
	var file *parsetree.Node
	for !p.at(token.EOF) {
		unit, ok := p.parseDesignUnit()
		if !ok {
			p.resyncTop()
			continue
		}
		file = parsetree.AppendList(file, parsetree.TagDesignFile, unit)
	}
	return file
}

// parseDesignUnit разбирает context clause и следующий за ним library unit.
// Slot 0 holds the library unit, slot 1 the context clause or nil.
func (p *Parser) parseDesignUnit() (*parsetree.Node, bool) {
	start := p.lx.Peek().Span

	var ctx *parsetree.Node
	if p.atOr(token.KwLibrary, token.KwUse) {
		var ok bool
		if ctx, ok = p.parseContextClause(); !ok {
			return nil, false
		}
	}

	var (
		unit *parsetree.Node
		ok   bool
	)
	switch p.lx.Peek().Kind {
	case token.KwEntity:
		unit, ok = p.parseEntity()
	case token.KwPackage:
		unit, ok = p.parsePackage()
	case token.KwArchitecture:
		unit, ok = p.parseArchitecture()
	default:
		p.err(diag.SynExpectDesignUnit, "expected 'entity', 'package' or 'architecture', got "+p.describe(p.lx.Peek()))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return parsetree.New(parsetree.TagDesignUnit, start.Cover(p.lastSpan), unit, ctx), true
}

// resyncTop: восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующего design unit или EOF.
// A unit keyword right after 'end' belongs to the trailer and is skipped.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		if isUnitStarter(p.lx.Peek().Kind) && p.prev != token.KwEnd {
			return
		}
		p.advance()
	}
}

func isUnitStarter(k token.Kind) bool {
	switch k {
	case token.KwLibrary, token.KwUse, token.KwEntity, token.KwPackage, token.KwArchitecture:
		return true
	default:
		return false
	}
}
