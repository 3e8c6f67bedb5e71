package sema

import (
	"vhdlsema/internal/ast"
	"vhdlsema/internal/diag"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/symbols"
	"vhdlsema/internal/trace"
)

// entity analyses an entity declaration. The entity is registered
// tentatively while its declarations are analysed and committed only if all
// of them succeed.
func (a *analyzer) entity(n *parsetree.Node, root *symbols.ChainLink) *ast.Entity {
	id, ok := a.identifier(n.Piece(parsetree.SlotEntityName))
	if !ok {
		return nil
	}

	sp := trace.Begin(a.tracer, trace.ScopeUnit, "entity:"+id.Pretty(), a.span)
	outer := a.span
	a.span = sp.ID()
	defer func() { a.span = outer }()

	lib := a.opts.Library
	if old := lib.FindDesignUnit(id); old != nil {
		b := a.errorf(diag.SemaDuplicateDesignUnit, n,
			"Design unit "+id.Pretty()+" already exists in library!")
		if located, ok := old.(ast.Located); ok {
			loc := located.Location()
			b = b.WithNote(loc.Span, "Previous version was at "+loc.Format())
		}
		b.Emit()
		sp.End("duplicate")
		return nil
	}

	e := &ast.Entity{ID: id, Loc: a.location(n)}
	region := symbols.NewScope(symbols.RegionEntity, root)
	e.Region = region
	lib.TentativeAddDesignUnit(id, e)
	root.AddItem(id, e)

	if tail := n.Piece(parsetree.SlotEntityTrailer); tail != nil {
		tailID, ok := a.identifier(tail)
		if !ok || !tailID.Equal(id) {
			if ok {
				a.errorf(diag.SemaEndNameMismatch, n,
					"Name at end of entity must match name at beginning").Emit()
			}
			lib.DropTentativeDesignUnit()
			sp.End("trailer mismatch")
			return nil
		}
	}

	if n.Piece(parsetree.SlotEntityHeader) != nil {
		unsupported(n.Piece(parsetree.SlotEntityHeader), "entity")
	}
	if n.Piece(parsetree.SlotEntityStatements) != nil {
		unsupported(n.Piece(parsetree.SlotEntityStatements), "entity")
	}

	if decls := n.Piece(parsetree.SlotEntityDecls); decls != nil {
		if !a.declarationList(decls, region) {
			lib.DropTentativeDesignUnit()
			sp.End("declarations failed")
			return nil
		}
	}

	lib.CommitTentativeDesignUnit()
	sp.End("ok")
	return e
}
