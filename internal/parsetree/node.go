// Package parsetree defines the syntax tree handed from the parser to the
// semantic analyser.
//
// A tree is a set of tagged nodes with positional child slots. Slots may be
// nil: an entity without a declarative part, for example, has a nil slot 2.
// List constructs are left-leaning: a DeclarationList holds the list of all
// earlier items in slot 0 and the last item in slot 1, and a single-item list
// is just the item itself. The analyser relies on nothing else: how the tree
// was produced (the in-tree parser, a msgpack cache, a foreign front end) is
// irrelevant once it is built.
package parsetree

import "vhdlsema/internal/source"

// Slot indexes used by the analyser.
const (
	SlotDesignUnitLibraryUnit = 0
	SlotDesignUnitContext     = 1

	SlotEntityName       = 0
	SlotEntityHeader     = 1
	SlotEntityDecls      = 2
	SlotEntityStatements = 3
	SlotEntityTrailer    = 4

	SlotTypeDeclName       = 0
	SlotTypeDeclDefinition = 1

	SlotSubtypeDeclName = 0
	SlotSubtypeDeclMark = 1

	SlotPackageName    = 0
	SlotPackageDecls   = 1
	SlotPackageTrailer = 2

	SlotArchitectureName       = 0
	SlotArchitectureEntity     = 1
	SlotArchitectureDecls      = 2
	SlotArchitectureStatements = 3
	SlotArchitectureTrailer    = 4

	SlotListHead = 0
	SlotListTail = 1
)

// Node is one syntax tree node. Nodes are treated as immutable once built.
type Node struct {
	Tag     Tag         `msgpack:"t"`
	Pieces  []*Node     `msgpack:"p,omitempty"`
	Str     string      `msgpack:"s,omitempty"` // Latin-1 payload (identifiers)
	Chr     byte        `msgpack:"c,omitempty"`
	Int     int64       `msgpack:"i,omitempty"`
	Flag    bool        `msgpack:"f,omitempty"`
	Span    source.Span `msgpack:"sp"`
	HasSpan bool        `msgpack:"hs,omitempty"`
}

// New allocates a node with the given children.
func New(tag Tag, span source.Span, pieces ...*Node) *Node {
	return &Node{Tag: tag, Pieces: pieces, Span: span, HasSpan: true}
}

// Leaf builds a childless node carrying a string payload.
func Leaf(tag Tag, span source.Span, str string) *Node {
	return &Node{Tag: tag, Str: str, Span: span, HasSpan: true}
}

// Char builds a character literal node.
func Char(span source.Span, c byte) *Node {
	return &Node{Tag: TagLitChar, Chr: c, Span: span, HasSpan: true}
}

// Piece returns the child in slot i or nil when the slot is empty or absent.
func (n *Node) Piece(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Pieces) {
		return nil
	}
	return n.Pieces[i]
}

// Is reports whether n is non-nil and carries tag t.
func (n *Node) Is(t Tag) bool {
	return n != nil && n.Tag == t
}

// AppendList extends a left-leaning list: the first item is returned as is,
// later items wrap the accumulated list in a new node of the given tag.
func AppendList(list *Node, tag Tag, item *Node) *Node {
	if list == nil {
		return item
	}
	span := list.Span.Cover(item.Span)
	return New(tag, span, list, item)
}

// Walk visits n and its descendants depth-first, left to right, skipping
// nil slots. Returning false from fn prunes the subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, p := range n.Pieces {
		Walk(p, fn)
	}
}
