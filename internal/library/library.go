// Package library keeps analyzed design units per compilation library.
//
// A Library holds committed units in commit order plus at most one pending
// ("tentative") unit. The pending unit is visible to FindDesignUnit so a
// unit under analysis can see itself, and is either committed or dropped
// once its analysis finishes.
package library

import (
	"fmt"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
)

// pendingUnit is the tentative slot. A nil *pendingUnit is the stable state.
type pendingUnit struct {
	name ident.Identifier
	node ast.Node
}

// Library is one named compilation library.
type Library struct {
	id      ident.Identifier
	units   []ast.Node
	byName  map[ident.Key]ast.Node
	pending *pendingUnit
}

// New creates an empty library named id.
func New(id ident.Identifier) *Library {
	return &Library{
		id:     id,
		byName: make(map[ident.Key]ast.Node),
	}
}

// ID returns the library name.
func (l *Library) ID() ident.Identifier { return l.id }

// FindDesignUnit returns the unit named name, checking the tentative slot
// before committed units.
func (l *Library) FindDesignUnit(name ident.Identifier) ast.Node {
	if l.pending != nil && l.pending.name.Equal(name) {
		return l.pending.node
	}
	return l.byName[name.Key()]
}

// Pending reports whether a tentative unit is registered.
func (l *Library) Pending() bool { return l.pending != nil }

// TentativeAddDesignUnit reserves name for node until commit or drop.
// Calling it while another unit is pending is a programming error.
func (l *Library) TentativeAddDesignUnit(name ident.Identifier, node ast.Node) {
	if l.pending != nil {
		panic(fmt.Sprintf("library %s: tentative add of %s while %s is pending",
			l.id.Pretty(), name.Pretty(), l.pending.name.Pretty()))
	}
	if node == nil || !name.IsValid() {
		panic(fmt.Sprintf("library %s: tentative add needs a name and a node", l.id.Pretty()))
	}
	l.pending = &pendingUnit{name: name, node: node}
}

// CommitTentativeDesignUnit makes the pending unit permanent.
func (l *Library) CommitTentativeDesignUnit() {
	p := l.mustPending("commit")
	l.pending = nil
	l.AddDesignUnit(p.name, p.node)
}

// DropTentativeDesignUnit forgets the pending unit without it ever becoming
// part of the library.
func (l *Library) DropTentativeDesignUnit() {
	l.mustPending("drop")
	l.pending = nil
}

// AddDesignUnit commits node under name directly. Callers check for an
// existing unit first.
func (l *Library) AddDesignUnit(name ident.Identifier, node ast.Node) {
	l.byName[name.Key()] = node
	l.units = append(l.units, node)
}

// Units returns the committed units in commit order.
func (l *Library) Units() []ast.Node { return l.units }

func (l *Library) mustPending(op string) *pendingUnit {
	if l.pending == nil {
		panic(fmt.Sprintf("library %s: %s without a tentative unit", l.id.Pretty(), op))
	}
	return l.pending
}
