package ast

import (
	"testing"

	"vhdlsema/internal/ident"
	"vhdlsema/internal/source"
)

func TestTypeProfileEqual(t *testing.T) {
	t1 := &EnumerationTypeDecl{ID: ident.MustLatin1("t1", false)}
	t2 := &EnumerationTypeDecl{ID: ident.MustLatin1("t2", false)}

	a := (&EnumerationLitDecl{Char: '0', IsCharLit: true, Type: t1}).TypeProfile()
	b := (&EnumerationLitDecl{Char: '0', IsCharLit: true, Type: t1}).TypeProfile()
	c := (&EnumerationLitDecl{Char: '0', IsCharLit: true, Type: t2}).TypeProfile()

	if !a.Equal(b) {
		t.Error("literals of the same type must share a profile")
	}
	if a.Equal(c) {
		t.Error("literals of different types must not share a profile")
	}

	withParam := TypeProfile{Params: []Node{t1}, Result: t1}
	if withParam.Equal(a) || a.Equal(withParam) {
		t.Error("parameter count must distinguish profiles")
	}
	other := TypeProfile{Params: []Node{t2}, Result: t1}
	if withParam.Equal(other) {
		t.Error("parameter types must distinguish profiles")
	}
}

func TestCapabilities(t *testing.T) {
	var n Node = &EnumerationLitDecl{IsCharLit: true, Char: 'x'}
	if _, ok := n.(Overloadable); !ok {
		t.Error("enumeration literals are overloadable")
	}
	if _, ok := n.(Located); ok {
		t.Error("enumeration literals carry no location")
	}
	if n.Display() != "'x'" {
		t.Errorf("unexpected display %q", n.Display())
	}
	for _, n := range []Node{&Entity{}, &EnumerationTypeDecl{}, &SubtypeDecl{}} {
		if _, ok := n.(Overloadable); ok {
			t.Errorf("%s must not be overloadable", n.Kind())
		}
		if _, ok := n.(Located); !ok {
			t.Errorf("%s must be located", n.Kind())
		}
	}
}

func TestLocationFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("rtl/top.vhd", []byte("library ieee;\nentity top is\nend;\n"))

	loc := LocationOf(fs, "rtl/top.vhd", source.Span{File: id, Start: 14, End: 32})
	if got := loc.Format(); got != "rtl/top.vhd:2:1" {
		t.Errorf("Format() = %q", got)
	}
	if loc.LastLine != 3 || loc.LastColumn != 4 {
		t.Errorf("unexpected last position %d:%d", loc.LastLine, loc.LastColumn)
	}

	unknown := LocationOf(fs, "rtl/top.vhd", source.FileSpan(id))
	if unknown.Known || unknown.Format() != "rtl/top.vhd" {
		t.Errorf("unexpected unknown location %+v", unknown)
	}
}

func TestSubtypeBaseType(t *testing.T) {
	base := &EnumerationTypeDecl{ID: ident.MustLatin1("bit", false)}
	s1 := &SubtypeDecl{ID: ident.MustLatin1("s1", false), Base: base}
	s2 := &SubtypeDecl{ID: ident.MustLatin1("s2", false), Base: s1}
	if s2.BaseType() != base {
		t.Errorf("BaseType() = %v, want %v", s2.BaseType(), base)
	}
}
