package diag

import (
	"testing"

	"vhdlsema/internal/source"
)

func TestBagLimitAndSplit(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	sp := source.Span{File: 0, Start: 0, End: 1}

	ReportWarning(r, SemaInfo, sp, "w1").Emit()
	ReportError(r, SemaDuplicateDeclaration, sp, "e1").WithNote(sp, "n").Emit()
	ReportError(r, SemaDuplicateDeclaration, sp, "e2").Emit()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	if bag.Dropped() != 1 {
		t.Fatalf("expected 1 dropped diagnostic, got %d", bag.Dropped())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("expected both errors and warnings")
	}
	errs := bag.Errors()
	if len(errs) != 1 || errs[0].Message != "e1" || len(errs[0].Notes) != 1 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if w := bag.Warnings(); len(w) != 1 || w[0].Message != "w1" {
		t.Fatalf("unexpected warnings: %+v", w)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	var got []Diagnostic
	collect := ReporterFunc(func(d Diagnostic) { got = append(got, d) })
	b := ReportError(collect, SemaEndNameMismatch, source.Span{}, "x").WithNote(source.Span{}, "n")
	b.Emit()
	b.Emit()
	if len(got) != 1 || got[0].Code != SemaEndNameMismatch || len(got[0].Notes) != 1 {
		t.Fatalf("expected a single diagnostic with a note, got %+v", got)
	}
	if b.Diagnostic().Message != "x" {
		t.Errorf("Diagnostic() = %+v", b.Diagnostic())
	}

	var nilBuilder *ReportBuilder
	nilBuilder.WithNote(source.Span{}, "ignored").Emit()
	ReportWarning(nil, SemaInfo, source.Span{}, "no reporter").Emit()
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{File: 1, Start: 4, End: 6}
	r.Report(NewError(SynUnexpectedToken, sp, "unexpected"))
	r.Report(NewError(SynUnexpectedToken, sp, "unexpected"))
	r.Report(NewError(SynUnexpectedToken, sp, "other"))
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", bag.Len())
	}
	if r.Suppressed() != 1 {
		t.Errorf("Suppressed() = %d, want 1", r.Suppressed())
	}
}

func TestSeverityNames(t *testing.T) {
	for sev, want := range map[Severity][2]string{
		SevInfo:    {"info", "INFO"},
		SevWarning: {"warning", "WARNING"},
		SevError:   {"error", "ERROR"},
		7:          {"error", "UNKNOWN"},
	} {
		if sev.Label() != want[0] || sev.String() != want[1] {
			t.Errorf("severity %d: got %q/%q, want %q/%q", sev, sev.Label(), sev.String(), want[0], want[1])
		}
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	b := NewBag(3)
	BagReporter{Bag: a}.Report(NewError(SemaError, source.Span{}, "a"))
	for _, m := range []string{"b1", "b2"} {
		BagReporter{Bag: b}.Report(NewError(SemaError, source.Span{}, m))
	}
	a.Merge(b)
	if a.Len() != 3 || a.Items()[2].Message != "b2" {
		t.Fatalf("unexpected merge result: %+v", a.Items())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:          "LEX1001",
		SynExpectSemicolon:      "SYN2003",
		SemaDuplicateDesignUnit: "SEM3002",
		IOLoadFileError:         "IO4001",
		UnknownCode:             "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if SemaNotAType.Title() == UnknownCode.Title() {
		t.Error("SemaNotAType has no description")
	}
}
