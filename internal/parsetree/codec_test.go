package parsetree

import (
	"bytes"
	"strings"
	"testing"

	"vhdlsema/internal/source"
)

func sampleTree(file source.FileID) *Node {
	sp := func(a, b uint32) source.Span { return source.Span{File: file, Start: a, End: b} }
	lits := AppendList(Leaf(TagBasicID, sp(20, 25), "lit_a"), TagEnumLiteralList, Char(sp(27, 30), '1'))
	typ := New(TagFullTypeDeclaration, sp(10, 32),
		Leaf(TagBasicID, sp(15, 16), "T"),
		New(TagEnumerationTypeDefinition, sp(19, 31), lits))
	entity := New(TagEntity, sp(0, 50), Leaf(TagBasicID, sp(7, 8), "E"), nil, typ, nil, nil)
	return New(TagDesignUnit, sp(0, 50), entity, nil)
}

func TestMarshalRoundTripRebindsFile(t *testing.T) {
	data, err := Marshal(sampleTree(3))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	root, err := Unmarshal(data, 7)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	entity := root.Piece(SlotDesignUnitLibraryUnit)
	if !entity.Is(TagEntity) {
		t.Fatalf("slot 0 = %v, want PT_ENTITY", entity)
	}
	if entity.Piece(SlotEntityHeader) != nil || entity.Piece(SlotEntityTrailer) != nil {
		t.Errorf("nil slots must survive the round trip")
	}
	decl := entity.Piece(SlotEntityDecls)
	if got := decl.Piece(SlotTypeDeclName).Str; got != "T" {
		t.Errorf("type name = %q", got)
	}
	Walk(root, func(n *Node) bool {
		if n.Span.File != 7 {
			t.Errorf("%v span file = %d, want 7", n.Tag, n.Span.File)
		}
		return true
	})
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte{0xc1}, 0); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestPrintKeepsEmptySlots(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, sampleTree(0), nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"type": "PT_DESIGN_UNIT"`, `"type": "PT_ENUM_LITERAL_LIST"`, `"chr": "1"`, "null"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s:\n%s", want, out)
		}
	}
}
