package sema

import (
	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/parsetree"
)

// identifier builds an Identifier from a BasicID or ExtID leaf. Trees from
// other producers may carry names that fail validation; those are reported.
func (a *analyzer) identifier(n *parsetree.Node) (ident.Identifier, bool) {
	var extended bool
	switch {
	case n.Is(parsetree.TagBasicID):
	case n.Is(parsetree.TagExtID):
		extended = true
	default:
		unsupported(n, "identifier")
	}
	id, err := ident.FromLatin1(n.Str, extended)
	if err != nil {
		a.errorf(diag.SemaBadIdentifier, n,
			"Invalid identifier "+ident.PrettyLatin1(n.Str)+": "+err.Error()).Emit()
		return ident.Identifier{}, false
	}
	return id, true
}
