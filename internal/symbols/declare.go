package symbols

import (
	"fmt"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
)

// Outcome is the result of trying to declare a name in a region.
type Outcome uint8

const (
	// Declared means the node was inserted.
	Declared Outcome = iota
	// ConflictNotOverloadable means an existing declaration or the new one
	// cannot be overloaded.
	ConflictNotOverloadable
	// ConflictSameProfile means an overloadable declaration with an
	// identical type profile already exists.
	ConflictSameProfile
)

func (o Outcome) String() string {
	switch o {
	case Declared:
		return "declared"
	case ConflictNotOverloadable:
		return "duplicate"
	case ConflictSameProfile:
		return "duplicate overload"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// OK reports whether the declaration was accepted.
func (o Outcome) OK() bool { return o == Declared }

// TryDeclare inserts n under id unless it clashes with an existing
// declaration of the same name in r. Parents are not consulted: hiding an
// outer declaration is legal.
func TryDeclare(r Region, id ident.Identifier, n ast.Node) Outcome {
	out := checkOverload(r.Lookup(id), n)
	if out == Declared {
		r.AddItem(id, n)
	}
	return out
}

// TryDeclareChar is TryDeclare for character literals.
func TryDeclareChar(r Region, c byte, n ast.Node) Outcome {
	out := checkOverload(r.FindChar(c), n)
	if out == Declared {
		r.AddChar(c, n)
	}
	return out
}

// checkOverload decides whether n may join the overload set existing.
// All members of a set share overloadability, so only the first one is
// inspected for it.
func checkOverload(existing []ast.Node, n ast.Node) Outcome {
	if len(existing) == 0 {
		return Declared
	}
	if _, ok := existing[0].(ast.Overloadable); !ok {
		return ConflictNotOverloadable
	}
	candidate, ok := n.(ast.Overloadable)
	if !ok {
		return ConflictNotOverloadable
	}

	profile := candidate.TypeProfile()
	for _, e := range existing {
		ov, ok := e.(ast.Overloadable)
		if !ok {
			panic(fmt.Sprintf("symbols: overload set mixes %s with overloadable declarations", e.Kind()))
		}
		if ov.TypeProfile().Equal(profile) {
			return ConflictSameProfile
		}
	}
	return Declared
}
