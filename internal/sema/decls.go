package sema

import (
	"strconv"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/diag"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/symbols"
	"vhdlsema/internal/trace"
)

// declarationList analyses every declarative item, even after a failure, so
// all duplicate declarations of a unit are reported at once.
func (a *analyzer) declarationList(n *parsetree.Node, region symbols.Region) bool {
	if n.Is(parsetree.TagDeclarationList) {
		ok := a.declarationList(n.Piece(parsetree.SlotListHead), region)
		return a.declarativeItem(n.Piece(parsetree.SlotListTail), region) && ok
	}
	return a.declarativeItem(n, region)
}

func (a *analyzer) declarativeItem(n *parsetree.Node, region symbols.Region) bool {
	switch {
	case n.Is(parsetree.TagFullTypeDeclaration):
		return a.typeDeclaration(n, region)
	case n.Is(parsetree.TagSubtypeDeclaration):
		return a.subtypeDeclaration(n, region)
	default:
		unsupported(n, "declarativeItem")
		return false
	}
}

func (a *analyzer) typeDeclaration(n *parsetree.Node, region symbols.Region) bool {
	id, ok := a.identifier(n.Piece(parsetree.SlotTypeDeclName))
	if !ok {
		return false
	}
	def := n.Piece(parsetree.SlotTypeDeclDefinition)
	if !def.Is(parsetree.TagEnumerationTypeDefinition) {
		unsupported(def, "typeDeclaration")
	}

	sp := trace.Begin(a.tracer, trace.ScopeNode, "type:"+id.Pretty(), a.span)
	t := &ast.EnumerationTypeDecl{ID: id, Loc: a.location(n)}
	if !symbols.TryDeclare(region, id, t).OK() {
		a.errorf(diag.SemaDuplicateDeclaration, n, "Duplicate declaration of type "+id.Pretty()+"!").Emit()
		sp.End("duplicate")
		return false
	}

	var idx uint64
	ok = a.enumLiterals(def.Piece(0), region, t, &idx, n)
	sp.WithExtra("literals", strconv.Itoa(len(t.Literals))).End("")
	return ok
}

// enumLiterals walks the left-leaning literal list. idx advances once per
// list element whether or not the literal was accepted.
func (a *analyzer) enumLiterals(n *parsetree.Node, region symbols.Region, t *ast.EnumerationTypeDecl, idx *uint64, decl *parsetree.Node) bool {
	if n.Is(parsetree.TagEnumLiteralList) {
		ok := a.enumLiterals(n.Piece(parsetree.SlotListHead), region, t, idx, decl)
		*idx++
		return a.enumLiteral(n.Piece(parsetree.SlotListTail), region, t, *idx, decl) && ok
	}
	return a.enumLiteral(n, region, t, *idx, decl)
}

// enumLiteral declares one literal in region. Diagnostics point at the type
// declaration that introduces it.
func (a *analyzer) enumLiteral(n *parsetree.Node, region symbols.Region, t *ast.EnumerationTypeDecl, idx uint64, decl *parsetree.Node) bool {
	lit := &ast.EnumerationLitDecl{Index: idx, Type: t}

	var out symbols.Outcome
	if n.Is(parsetree.TagLitChar) {
		lit.Char = n.Chr
		lit.IsCharLit = true
		out = symbols.TryDeclareChar(region, lit.Char, lit)
	} else {
		id, ok := a.identifier(n)
		if !ok {
			return false
		}
		lit.ID = id
		out = symbols.TryDeclare(region, id, lit)
	}

	if !out.OK() {
		code := diag.SemaDuplicateDeclaration
		if out == symbols.ConflictSameProfile {
			code = diag.SemaDuplicateOverload
		}
		a.errorf(code, decl, "Duplicate declaration of enum literal "+lit.Display()+"!").Emit()
		return false
	}
	t.Literals = append(t.Literals, lit)
	return true
}

// subtypeDeclaration resolves the type mark through region and its parents.
func (a *analyzer) subtypeDeclaration(n *parsetree.Node, region symbols.Region) bool {
	id, ok := a.identifier(n.Piece(parsetree.SlotSubtypeDeclName))
	if !ok {
		return false
	}
	markNode := n.Piece(parsetree.SlotSubtypeDeclMark)
	markID, ok := a.identifier(markNode)
	if !ok {
		return false
	}

	sp := trace.Begin(a.tracer, trace.ScopeNode, "subtype:"+id.Pretty(), a.span)
	defer sp.End("")

	found, _ := symbols.LookupChain(region, markID)
	if len(found) == 0 {
		a.errorf(diag.SemaUnknownType, markNode, "Unknown type "+markID.Pretty()+"!").Emit()
		return false
	}
	mark, isType := found[0].(ast.TypeMark)
	if !isType {
		a.errorf(diag.SemaNotAType, markNode,
			markID.Pretty()+" is not a type ("+found[0].Kind().String()+")!").Emit()
		return false
	}

	s := &ast.SubtypeDecl{ID: id, Loc: a.location(n), Base: mark}
	if !symbols.TryDeclare(region, id, s).OK() {
		a.errorf(diag.SemaDuplicateDeclaration, n, "Duplicate declaration of subtype "+id.Pretty()+"!").Emit()
		return false
	}
	return true
}
