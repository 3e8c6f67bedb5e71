package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"vhdlsema/internal/source"
)

// goldenLine is one row of a golden file: "severity CODE path:line:col message".
type goldenLine struct {
	sev  string
	code string
	path string
	line uint32
	col  uint32
	msg  string
}

func (g goldenLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", g.sev, g.code, g.path, g.line, g.col, g.msg)
}

func compareGolden(a, b goldenLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.line, b.line),
		cmp.Compare(a.col, b.col),
		cmp.Compare(a.sev, b.sev),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.msg, b.msg),
	)
}

// FormatGoldenDiagnostics renders diags one per line, sorted by position,
// with paths relative to fs.BaseDir(). Notes become "note" rows carrying
// their diagnostic's code when includeNotes is set. Positionless spans
// print 0:0; spans in unknown files are dropped.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var lines []goldenLine
	for i := range diags {
		d := &diags[i]
		if g, ok := goldenRow(fs, d.Primary, d.Severity.Label(), d.Code, d.Message); ok {
			lines = append(lines, g)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if g, ok := goldenRow(fs, n.Span, "note", d.Code, n.Msg); ok {
				lines = append(lines, g)
			}
		}
	}
	slices.SortStableFunc(lines, compareGolden)

	rows := make([]string, len(lines))
	for i, g := range lines {
		rows[i] = g.String()
	}
	return strings.Join(rows, "\n")
}

func goldenRow(fs *source.FileSet, span source.Span, sev string, code Code, msg string) (goldenLine, bool) {
	file := fs.Get(span.File)
	if file == nil {
		return goldenLine{}, false
	}
	g := goldenLine{
		sev:  sev,
		code: code.ID(),
		path: trimDotSlash(filepath.ToSlash(file.DisplayPath(source.PathRelative, fs.BaseDir()))),
		msg:  strings.Join(strings.Fields(msg), " "),
	}
	if span.HasPos() && int(span.Start) <= len(file.Content) {
		start, _ := fs.Resolve(span)
		g.line, g.col = start.Line, start.Col
	}
	return g, true
}

func trimDotSlash(p string) string {
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}
