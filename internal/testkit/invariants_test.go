package testkit

import (
	"strings"
	"testing"

	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
)

func TestCheckSpanInvariants(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.vhd", []byte("entity e is end;"))
	file := fs.Get(id)
	sp := func(start, end uint32) source.Span { return source.Span{File: id, Start: start, End: end} }

	good := parsetree.New(parsetree.TagEntity, sp(0, 16), parsetree.Leaf(parsetree.TagBasicID, sp(7, 8), "e"), nil)
	if err := CheckSpanInvariants(good, file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		tree *parsetree.Node
		want string
	}{
		{"empty", parsetree.Leaf(parsetree.TagBasicID, sp(3, 3), "x"), "empty span"},
		{"beyond", parsetree.Leaf(parsetree.TagBasicID, sp(10, 40), "x"), "beyond content"},
		{"outside", parsetree.New(parsetree.TagEntity, sp(0, 5), parsetree.Leaf(parsetree.TagBasicID, sp(7, 8), "e")), "outside parent"},
		{"order", parsetree.New(parsetree.TagEntity, sp(0, 16),
			parsetree.Leaf(parsetree.TagBasicID, sp(7, 8), "e"),
			parsetree.Leaf(parsetree.TagBasicID, sp(0, 6), "x")), "overlaps"},
		{"file", parsetree.Leaf(parsetree.TagBasicID, source.Span{File: id + 1, Start: 0, End: 1}, "x"), "file mismatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSpanInvariants(tt.tree, file)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	// узлы без позиции пропускаются
	bare := &parsetree.Node{Tag: parsetree.TagEntity, Pieces: []*parsetree.Node{parsetree.Leaf(parsetree.TagBasicID, sp(7, 8), "e")}}
	if err := CheckSpanInvariants(bare, file); err != nil {
		t.Errorf("nodes without spans must be skipped: %v", err)
	}
}
