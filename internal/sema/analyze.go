// Package sema analyses parse trees into the design model. It walks a design
// file in source order, registers entities in the target library and declares
// their enumeration types, literals and subtypes in the entity's region.
//
// Problems in the VHDL source are reported as diagnostics and make the
// enclosing design unit fail; the library never keeps a half-analysed unit.
// Tree shapes the analyser does not model panic with *UnsupportedError.
package sema

import (
	"context"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/diag"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
	"vhdlsema/internal/symbols"
	"vhdlsema/internal/trace"
)

type analyzer struct {
	opts   Options
	tracer trace.Tracer
	span   uint64 // текущий родительский span
}

// AnalyzeDesignFile analyses every design unit of tree into opts.Library.
// It reports whether all of them succeeded; a failing unit does not stop
// its siblings.
func AnalyzeDesignFile(ctx context.Context, tree *parsetree.Node, opts Options) bool {
	if opts.Library == nil {
		panic("sema: AnalyzeDesignFile without a target library")
	}
	ctx, sp := trace.Start(ctx, trace.ScopePass, "analyze")
	sp.WithExtra("file", opts.FileName)
	a := &analyzer{
		opts:   opts,
		tracer: trace.FromContext(ctx),
		span:   trace.ParentID(ctx),
	}
	ok := a.designFile(tree)
	sp.EndOK(ok)
	return ok
}

// designFile walks the left-leaning list of design units.
func (a *analyzer) designFile(n *parsetree.Node) bool {
	switch {
	case n.Is(parsetree.TagDesignFile):
		ok := a.designFile(n.Piece(parsetree.SlotListHead))
		return a.designUnit(n.Piece(parsetree.SlotListTail)) && ok
	case n.Is(parsetree.TagDesignUnit):
		return a.designUnit(n)
	default:
		unsupported(n, "designFile")
		return false
	}
}

func (a *analyzer) designUnit(n *parsetree.Node) bool {
	if !n.Is(parsetree.TagDesignUnit) {
		unsupported(n, "designUnit")
	}
	if ctx := n.Piece(parsetree.SlotDesignUnitContext); ctx != nil {
		unsupported(ctx, "designUnit")
	}

	// корневой регион: видит сам design unit, но не владеет им
	root := symbols.NewChainLink(symbols.RegionDesignUnit, nil)

	unit := n.Piece(parsetree.SlotDesignUnitLibraryUnit)
	switch {
	case unit.Is(parsetree.TagEntity):
		return a.entity(unit, root) != nil
	default:
		unsupported(unit, "designUnit")
		return false
	}
}

// spanOf returns the node span or a position-less span for the file.
func (a *analyzer) spanOf(n *parsetree.Node) source.Span {
	if n != nil && n.HasSpan {
		return n.Span
	}
	return source.FileSpan(a.opts.File)
}

func (a *analyzer) location(n *parsetree.Node) ast.Location {
	return ast.LocationOf(a.opts.FileSet, a.opts.FileName, a.spanOf(n))
}

func (a *analyzer) errorf(code diag.Code, n *parsetree.Node, msg string) *diag.ReportBuilder {
	return diag.ReportError(a.opts.Reporter, code, a.spanOf(n), msg)
}
