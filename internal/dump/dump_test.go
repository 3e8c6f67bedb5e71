package dump

import (
	"bytes"
	"encoding/json"
	"testing"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/library"
	"vhdlsema/internal/source"
	"vhdlsema/internal/symbols"
)

func sampleDatabase(t *testing.T) *library.DesignDatabase {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.AddVirtual("top.vhd", []byte("entity Top is\n  type T is ('0', Run);\nend;\n"))

	lib := library.New(ident.MustLatin1("work", false))
	e := &ast.Entity{
		ID:  ident.MustLatin1("Top", false),
		Loc: ast.LocationOf(fs, "top.vhd", source.Span{File: file, Start: 0, End: 40}),
	}
	region := symbols.NewScope(symbols.RegionEntity, nil)
	e.Region = region

	typ := &ast.EnumerationTypeDecl{
		ID:  ident.MustLatin1("T", false),
		Loc: ast.LocationOf(fs, "top.vhd", source.Span{File: file, Start: 16, End: 36}),
	}
	region.AddItem(typ.ID, typ)
	zero := &ast.EnumerationLitDecl{Char: '0', IsCharLit: true, Index: 0, Type: typ}
	run := &ast.EnumerationLitDecl{ID: ident.MustLatin1("Run", false), Index: 1, Type: typ}
	region.AddChar('0', zero)
	region.AddItem(run.ID, run)
	typ.Literals = append(typ.Literals, zero, run)

	sub := &ast.SubtypeDecl{ID: ident.MustLatin1("S", false), Loc: ast.Location{File: "top.vhd"}, Base: typ}
	region.AddItem(sub.ID, sub)

	lib.AddDesignUnit(e.ID, e)
	db := library.NewDesignDatabase()
	if err := db.AddLibrary(lib); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestBuild(t *testing.T) {
	out := Build(sampleDatabase(t))
	if len(out.Libraries) != 1 || out.Libraries[0].Name != "work" {
		t.Fatalf("unexpected libraries %+v", out.Libraries)
	}
	units := out.Libraries[0].Units
	if len(units) != 1 {
		t.Fatalf("expected one unit, got %d", len(units))
	}
	top := units[0]
	if top.Kind != "Entity" || top.Name != "Top" || top.Canonical != "top" {
		t.Errorf("unexpected entity %+v", top)
	}
	if top.Location == nil || top.Location.FirstLine != 1 || top.Location.LastLine != 3 {
		t.Errorf("unexpected entity location %+v", top.Location)
	}
	if len(top.Declarations) != 2 {
		t.Fatalf("expected type and subtype only, got %d declarations", len(top.Declarations))
	}
	for _, d := range top.Declarations {
		if d.Kind == ast.KindEnumerationLiteral.String() {
			t.Errorf("literal %s dumped at entity level", d.Name)
		}
	}
	typ := top.Declarations[0]
	if len(typ.Literals) != 2 || typ.Literals[0].Name != "'0'" || *typ.Literals[1].Index != 1 {
		t.Errorf("unexpected literals %+v", typ.Literals)
	}
	if typ.Literals[0].Location != nil {
		t.Error("literals carry no location")
	}
	sub := top.Declarations[1]
	if sub.Base != "T" || sub.Location.FirstLine != 0 {
		t.Errorf("unexpected subtype %+v", sub)
	}
}

func TestDatabaseIsDeterministic(t *testing.T) {
	db := sampleDatabase(t)
	var a, b bytes.Buffer
	if err := Database(&a, db); err != nil {
		t.Fatal(err)
	}
	if err := Database(&b, db); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatal("dump output differs between runs")
	}
	var back DatabaseJSON
	if err := json.Unmarshal(a.Bytes(), &back); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
}
