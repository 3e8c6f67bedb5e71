package symbols

import (
	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
)

// Scope is an owning declarative region, e.g. an entity declarative part.
// Every node indexed here belongs to the scope.
type Scope struct {
	index
	owned []ast.Node
}

var (
	_ Region     = (*Scope)(nil)
	_ ast.Region = (*Scope)(nil)
)

// NewScope creates an empty owning region nested in parent (may be nil).
func NewScope(kind RegionKind, parent Region) *Scope {
	return &Scope{index: newIndex(kind, parent)}
}

func (s *Scope) AddItem(id ident.Identifier, n ast.Node) {
	s.addItem(id, n)
	s.owned = append(s.owned, n)
}

func (s *Scope) AddChar(c byte, n ast.Node) {
	s.addChar(c, n)
	s.owned = append(s.owned, n)
}

func (s *Scope) AddString(str string, n ast.Node) {
	s.addString(str, n)
	s.owned = append(s.owned, n)
}

// Declarations returns the owned nodes in insertion order.
func (s *Scope) Declarations() []ast.Node {
	return s.owned
}

// Len reports how many nodes the scope owns.
func (s *Scope) Len() int { return len(s.owned) }
