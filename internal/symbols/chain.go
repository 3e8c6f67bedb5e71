package symbols

import (
	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
)

// ChainLink is a non-owning region. It makes nodes that live elsewhere (a
// design unit registered in a library, say) visible to nested lookups
// without taking them over.
type ChainLink struct {
	index
}

var _ Region = (*ChainLink)(nil)

// NewChainLink creates an empty link nested in parent (may be nil).
func NewChainLink(kind RegionKind, parent Region) *ChainLink {
	return &ChainLink{index: newIndex(kind, parent)}
}

func (c *ChainLink) AddItem(id ident.Identifier, n ast.Node) { c.addItem(id, n) }

func (c *ChainLink) AddChar(ch byte, n ast.Node) { c.addChar(ch, n) }

func (c *ChainLink) AddString(s string, n ast.Node) { c.addString(s, n) }
