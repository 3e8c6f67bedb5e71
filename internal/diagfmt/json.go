package diagfmt

import (
	"encoding/json"
	"io"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/source"
)

// PositionJSON is a 1-based line and byte column.
type PositionJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// LocationJSON omits offsets for spans without a position and the
// line/col range unless JSONOpts.IncludePositions is set.
type LocationJSON struct {
	File      string        `json:"file"`
	StartByte *uint32       `json:"start_byte,omitempty"`
	EndByte   *uint32       `json:"end_byte,omitempty"`
	Start     *PositionJSON `json:"start,omitempty"`
	End       *PositionJSON `json:"end,omitempty"` // последний байт, включительно
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON. Truncated counts the
// diagnostics cut by JSONOpts.Max.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Truncated   int              `json:"truncated,omitempty"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(span source.Span) LocationJSON {
	loc := LocationJSON{File: displayPath(b.fs, span.File, b.opts.PathMode)}
	f := b.fs.Get(span.File)
	if f == nil || !span.HasPos() || int(span.End) > len(f.Content) {
		return loc
	}
	start, end := span.Start, span.End
	loc.StartByte, loc.EndByte = &start, &end
	if b.opts.IncludePositions {
		first, last := b.fs.ResolveInclusive(span)
		loc.Start = &PositionJSON{Line: first.Line, Col: first.Col}
		loc.End = &PositionJSON{Line: last.Line, Col: last.Col}
	}
	return loc
}

func (b jsonBuilder) diagnostic(d *diag.Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	if !b.opts.IncludeNotes {
		return out
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: b.location(n.Span)})
	}
	return out
}

// BuildDiagnosticsOutput converts diags without serialising them.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	keep := len(diags)
	if opts.Max > 0 {
		keep = min(keep, opts.Max)
	}
	b := jsonBuilder{fs: fs, opts: opts}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, keep), Count: keep, Truncated: len(diags) - keep}
	for i := range keep {
		out.Diagnostics[i] = b.diagnostic(&diags[i])
	}
	return out
}

// JSON writes diags as one indented DiagnosticsOutput document.
func JSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(diags, fs, opts))
}
