package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	error[SEM3002]: Design unit top already exists in library!
//	  --> rtl/b.vhd:3:1
//	   |
//	 3 | entity top is
//	   | ^^^^^^
//	   = note: Previous version was at rtl/a.vhd:1:1
//
// Source lines are Latin-1; they are rendered through the identifier
// pretty table so control bytes and C1 bytes stay visible, and caret
// columns are measured in terminal cells.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := prettyPrinter{
		out:  bufio.NewWriter(w),
		fs:   fs,
		opts: opts,
	}
	if p.opts.TabWidth <= 0 {
		p.opts.TabWidth = 4
	}
	for i := range diags {
		p.diagnostic(&diags[i])
	}
	return p.out.Flush()
}

type prettyPrinter struct {
	out  *bufio.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgBlue, color.Bold)
	noteColor    = color.New(color.FgGreen)
)

func (p *prettyPrinter) paint(c *color.Color, s string) string {
	if !p.opts.Color {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

func (p *prettyPrinter) severity(sev diag.Severity) (string, *color.Color) {
	switch sev {
	case diag.SevError:
		return sev.Label(), errorColor
	case diag.SevWarning:
		return sev.Label(), warningColor
	}
	return sev.Label(), infoColor
}

func (p *prettyPrinter) diagnostic(d *diag.Diagnostic) {
	label, c := p.severity(d.Severity)
	fmt.Fprintf(p.out, "%s: %s\n", p.paint(c, label+"["+d.Code.ID()+"]"), d.Message)

	loc, hasPos := location(p.fs, d.Primary, p.opts.PathMode)
	gutter := 1
	var start, end source.LineCol
	if hasPos {
		start, end = p.fs.ResolveInclusive(d.Primary)
		gutter = len(strconv.FormatUint(uint64(start.Line), 10))
	}
	pad := strings.Repeat(" ", gutter)

	fmt.Fprintf(p.out, "%s%s %s\n", pad, p.paint(gutterColor, "-->"), loc)
	if hasPos {
		p.snippet(d.Primary, start, end, pad, c)
	}
	if p.opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(p.out, "%s %s %s\n", pad, p.paint(gutterColor, "="), p.paint(noteColor, "note: ")+n.Msg)
		}
	}
	p.out.WriteByte('\n')
}

func (p *prettyPrinter) snippet(span source.Span, start, end source.LineCol, pad string, c *color.Color) {
	f := p.fs.Get(span.File)
	raw := f.GetLine(start.Line)
	bar := p.paint(gutterColor, "|")

	fmt.Fprintf(p.out, "%s %s\n", pad, bar)
	fmt.Fprintf(p.out, "%s %s %s\n",
		p.paint(gutterColor, strconv.FormatUint(uint64(start.Line), 10)), bar,
		p.render(raw))

	from := min(int(start.Col)-1, len(raw))
	to := len(raw)
	if end.Line == start.Line {
		to = min(int(end.Col), len(raw))
	}
	lead := runewidth.StringWidth(p.render(raw[:from]))
	width := runewidth.StringWidth(p.render(raw[:to])) - lead
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(p.out, "%s %s %s%s\n", pad, bar,
		strings.Repeat(" ", lead), p.paint(c, strings.Repeat("^", width)))
}

// render expands tabs and maps every byte through the pretty table.
func (p *prettyPrinter) render(raw string) string {
	var b strings.Builder
	col := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\t' {
			n := p.opts.TabWidth - col%p.opts.TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		glyph := ident.PrettyByte(raw[i])
		b.WriteString(glyph)
		col += runewidth.StringWidth(glyph)
	}
	return b.String()
}
