package library

import (
	"errors"
	"testing"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
)

func id(name string) ident.Identifier { return ident.MustLatin1(name, false) }

func entity(name string) *ast.Entity { return &ast.Entity{ID: id(name)} }

func TestTentativeThenDrop(t *testing.T) {
	lib := New(id("work"))
	e := entity("e")

	lib.TentativeAddDesignUnit(e.ID, e)
	if !lib.Pending() {
		t.Fatal("expected a pending unit")
	}
	if lib.FindDesignUnit(id("E")) != e {
		t.Fatal("tentative unit must be visible")
	}
	if len(lib.Units()) != 0 {
		t.Fatal("tentative unit must not appear in Units()")
	}

	lib.DropTentativeDesignUnit()
	if lib.FindDesignUnit(id("e")) != nil {
		t.Fatal("dropped unit still visible")
	}
	if lib.Pending() || len(lib.Units()) != 0 {
		t.Fatal("drop must leave the library untouched")
	}
}

func TestTentativeThenCommit(t *testing.T) {
	lib := New(id("work"))
	first := entity("first")
	lib.AddDesignUnit(first.ID, first)

	e := entity("e")
	lib.TentativeAddDesignUnit(e.ID, e)
	lib.CommitTentativeDesignUnit()

	if lib.FindDesignUnit(id("e")) != e {
		t.Fatal("committed unit not found")
	}
	units := lib.Units()
	if len(units) != 2 || units[0] != first || units[1] != e {
		t.Fatalf("unexpected commit order: %v", units)
	}
	if lib.Pending() {
		t.Fatal("commit must clear the tentative slot")
	}
}

func TestTentativeShadowsCommitted(t *testing.T) {
	lib := New(id("work"))
	old := entity("e")
	lib.AddDesignUnit(old.ID, old)
	fresh := entity("e")
	lib.TentativeAddDesignUnit(fresh.ID, fresh)
	if lib.FindDesignUnit(id("e")) != fresh {
		t.Fatal("tentative slot must be checked first")
	}
	lib.DropTentativeDesignUnit()
	if lib.FindDesignUnit(id("e")) != old {
		t.Fatal("committed unit lost after drop")
	}
}

func TestPreconditionPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	lib := New(id("work"))
	mustPanic("commit while stable", lib.CommitTentativeDesignUnit)
	mustPanic("drop while stable", lib.DropTentativeDesignUnit)

	a := entity("a")
	lib.TentativeAddDesignUnit(a.ID, a)
	mustPanic("second tentative add", func() {
		b := entity("b")
		lib.TentativeAddDesignUnit(b.ID, b)
	})
	if lib.FindDesignUnit(id("a")) != a {
		t.Fatal("failed tentative add must not disturb the pending unit")
	}
}

func TestDesignDatabase(t *testing.T) {
	db := NewDesignDatabase()
	db.PopulateBuiltins()

	work := New(id("work"))
	ext := New(ident.MustLatin1("Work", true))
	if err := db.AddLibrary(work); err != nil {
		t.Fatalf("AddLibrary(work): %v", err)
	}
	if err := db.AddLibrary(ext); err != nil {
		t.Fatalf("extended name must not clash with basic one: %v", err)
	}
	if err := db.AddLibrary(New(id("WORK"))); !errors.Is(err, ErrDuplicateLibrary) {
		t.Fatalf("expected ErrDuplicateLibrary, got %v", err)
	}

	if db.FindLibrary(id("Work")) != work {
		t.Fatal("FindLibrary must fold case for basic identifiers")
	}
	if db.FindLibrary(ident.MustLatin1("Work", true)) != ext {
		t.Fatal("FindLibrary lost the extended library")
	}
	if libs := db.Libraries(); len(libs) != 2 || libs[0] != work || libs[1] != ext {
		t.Fatalf("unexpected library order: %v", libs)
	}
}
