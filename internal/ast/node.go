// Package ast holds the analyzed design model: design units and the
// declarations they own. Nodes are produced by internal/sema and indexed by
// the declarative regions in internal/symbols.
//
// Two capabilities attach to a subset of node kinds: Located (source
// location for diagnostics) and Overloadable (participates in overload sets
// and yields a TypeProfile).
package ast

import (
	"vhdlsema/internal/ident"
)

// Kind discriminates analyzed node kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindEntity
	KindEnumerationType
	KindEnumerationLiteral
	KindSubtype
)

func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "Entity"
	case KindEnumerationType:
		return "EnumerationTypeDecl"
	case KindEnumerationLiteral:
		return "EnumerationLitDecl"
	case KindSubtype:
		return "SubtypeDecl"
	default:
		return "Invalid"
	}
}

// Node is any analyzed declaration or design unit.
type Node interface {
	Kind() Kind
	// Display returns the name as shown to users.
	Display() string
}

// Located is implemented by nodes that remember where they were declared.
type Located interface {
	Node
	Location() Location
}

// Overloadable is implemented by nodes that may share a name with other
// declarations as long as their profiles differ.
type Overloadable interface {
	Node
	TypeProfile() TypeProfile
}

// TypeMark is implemented by declarations that denote a type.
type TypeMark interface {
	Node
	typeMark()
}

// Region is the view of a declarative region that its owner exposes.
type Region interface {
	// Declarations returns every node owned by the region in declaration order.
	Declarations() []Node
}

// Entity is an analyzed entity declaration. It owns its declarative region.
type Entity struct {
	ID     ident.Identifier
	Loc    Location
	Region Region
}

func (e *Entity) Kind() Kind         { return KindEntity }
func (e *Entity) Display() string    { return e.ID.Pretty() }
func (e *Entity) Location() Location { return e.Loc }

// EnumerationTypeDecl is `type T is (a, b, 'c');`.
type EnumerationTypeDecl struct {
	ID       ident.Identifier
	Loc      Location
	Literals []*EnumerationLitDecl
}

func (t *EnumerationTypeDecl) Kind() Kind         { return KindEnumerationType }
func (t *EnumerationTypeDecl) Display() string    { return t.ID.Pretty() }
func (t *EnumerationTypeDecl) Location() Location { return t.Loc }
func (t *EnumerationTypeDecl) typeMark()          {}

// EnumerationLitDecl is one literal of an enumeration type, either named or
// a character literal.
type EnumerationLitDecl struct {
	ID        ident.Identifier // zero value for character literals
	Char      byte
	IsCharLit bool
	Index     uint64
	Type      *EnumerationTypeDecl
}

func (l *EnumerationLitDecl) Kind() Kind { return KindEnumerationLiteral }

func (l *EnumerationLitDecl) Display() string {
	if l.IsCharLit {
		return "'" + ident.PrettyByte(l.Char) + "'"
	}
	return l.ID.Pretty()
}

// TypeProfile treats a literal as a parameterless function returning its
// enumeration type.
func (l *EnumerationLitDecl) TypeProfile() TypeProfile {
	return TypeProfile{Result: l.Type}
}

// SubtypeDecl is `subtype S is T;`.
type SubtypeDecl struct {
	ID   ident.Identifier
	Loc  Location
	Base TypeMark
}

func (s *SubtypeDecl) Kind() Kind         { return KindSubtype }
func (s *SubtypeDecl) Display() string    { return s.ID.Pretty() }
func (s *SubtypeDecl) Location() Location { return s.Loc }
func (s *SubtypeDecl) typeMark()          {}

// BaseType follows subtype chains down to the declaring type.
func (s *SubtypeDecl) BaseType() TypeMark {
	var t TypeMark = s
	for {
		sub, ok := t.(*SubtypeDecl)
		if !ok || sub.Base == nil {
			return t
		}
		t = sub.Base
	}
}
