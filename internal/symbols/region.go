// Package symbols implements VHDL declarative regions.
//
// A region indexes declarations under three independent keyspaces:
// identifiers, single characters and short strings (operator symbols).
// Entries under one keyspace are never visible through another, even when
// the spelling coincides.
//
// Ownership is a type-level choice. A Scope owns every node it indexes and
// reports them through Declarations. A ChainLink only indexes nodes owned
// elsewhere and exposes no ownership view. Both carry a parent link so
// lookups can continue through enclosing regions.
package symbols

import (
	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
)

// RegionKind records what construct a region belongs to.
type RegionKind uint8

const (
	RegionInvalid    RegionKind = iota
	RegionDesignUnit            // transient root per design unit
	RegionEntity                // entity declarative part
	RegionArchitecture
	RegionPackage
)

func (k RegionKind) String() string {
	switch k {
	case RegionDesignUnit:
		return "design unit"
	case RegionEntity:
		return "entity"
	case RegionArchitecture:
		return "architecture"
	case RegionPackage:
		return "package"
	default:
		return "invalid"
	}
}

// Region is the lookup and insertion contract shared by Scope and ChainLink.
//
// AddItem, AddChar and AddString insert without any conflict checks.
// Identifier insertions should go through TryDeclare, which only calls
// AddItem once the declaration is known to be legal.
type Region interface {
	Kind() RegionKind
	Parent() Region

	AddItem(id ident.Identifier, n ast.Node)
	AddChar(c byte, n ast.Node)
	AddString(s string, n ast.Node)

	// FindItem returns the first node declared under id, or nil.
	FindItem(id ident.Identifier) ast.Node
	// Lookup returns every node declared under id in insertion order.
	Lookup(id ident.Identifier) []ast.Node
	FindChar(c byte) []ast.Node
	FindString(s string) []ast.Node
}

// index holds the three keyspaces.
type index struct {
	kind    RegionKind
	parent  Region
	byIdent map[ident.Key][]ast.Node
	byChar  map[byte][]ast.Node
	byStr   map[string][]ast.Node
}

func newIndex(kind RegionKind, parent Region) index {
	return index{
		kind:    kind,
		parent:  parent,
		byIdent: make(map[ident.Key][]ast.Node),
		byChar:  make(map[byte][]ast.Node),
		byStr:   make(map[string][]ast.Node),
	}
}

func (x *index) Kind() RegionKind { return x.kind }

func (x *index) Parent() Region { return x.parent }

func (x *index) addItem(id ident.Identifier, n ast.Node) {
	mustNode(n)
	if !id.IsValid() {
		panic("symbols: AddItem with an invalid identifier")
	}
	k := id.Key()
	x.byIdent[k] = append(x.byIdent[k], n)
}

func (x *index) addChar(c byte, n ast.Node) {
	mustNode(n)
	x.byChar[c] = append(x.byChar[c], n)
}

func (x *index) addString(s string, n ast.Node) {
	mustNode(n)
	x.byStr[s] = append(x.byStr[s], n)
}

func (x *index) FindItem(id ident.Identifier) ast.Node {
	if nodes := x.byIdent[id.Key()]; len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

func (x *index) Lookup(id ident.Identifier) []ast.Node {
	return x.byIdent[id.Key()]
}

func (x *index) FindChar(c byte) []ast.Node {
	return x.byChar[c]
}

func (x *index) FindString(s string) []ast.Node {
	return x.byStr[s]
}

func mustNode(n ast.Node) {
	if n == nil {
		panic("symbols: nil node inserted into region")
	}
}

// LookupChain searches r and then its parents for id and returns the first
// non-empty overload set together with the region that declared it.
func LookupChain(r Region, id ident.Identifier) ([]ast.Node, Region) {
	for cur := r; cur != nil; cur = cur.Parent() {
		if nodes := cur.Lookup(id); len(nodes) > 0 {
			return nodes, cur
		}
	}
	return nil, nil
}
