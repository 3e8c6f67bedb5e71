package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/lexer"
	"vhdlsema/internal/library"
	"vhdlsema/internal/parser"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/sema"
	"vhdlsema/internal/source"
	"vhdlsema/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parse(input []byte) (*source.FileSet, source.FileID, parser.Result) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.vhd", input)
	reporter := diag.BagReporter{Bag: diag.NewBag(128)}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	return fs, fileID, parser.ParseFile(lx, parser.Options{Reporter: reporter, MaxErrors: 128})
}

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs, fileID, res := parse(input)
		if res.Tree == nil {
			return
		}
		if err := testkit.CheckSpanInvariants(res.Tree, fs.Get(fileID)); err != nil {
			t.Fatalf("span invariant: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("entity e is type t is ((((((a; end;"))
	f.Add([]byte("end end end entity entity ;;;"))
	f.Add([]byte("use use use . . all all"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			parse(input)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzAnalyze runs the analyser over every tree the parser accepts. Only
// the unsupported-construct panic is tolerated; the library must end stable.
func FuzzAnalyze(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs, fileID, res := parse(input)
		if res.Tree == nil {
			return
		}
		lib := library.New(ident.MustLatin1("work", false))
		analyze(t, res.Tree, sema.Options{
			Reporter: diag.BagReporter{Bag: diag.NewBag(128)},
			FileSet:  fs,
			File:     fileID,
			FileName: "fuzz.vhd",
			Library:  lib,
		})
		if lib.Pending() {
			return
		}
		for _, u := range lib.Units() {
			if u == nil {
				t.Fatal("nil unit committed")
			}
		}
	})
}

func analyze(t *testing.T, tree *parsetree.Node, opts sema.Options) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var unsupported *sema.UnsupportedError
		if err, ok := r.(error); ok && errors.As(err, &unsupported) {
			return
		}
		panic(r)
	}()
	sema.AnalyzeDesignFile(context.Background(), tree, opts)
}
