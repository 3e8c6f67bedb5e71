package ast

import (
	"strconv"

	"vhdlsema/internal/source"
)

// Location is a resolved declaration position. Lines and columns are 1-based;
// the last position is inclusive.
type Location struct {
	File        string
	Span        source.Span
	Known       bool
	FirstLine   uint32
	FirstColumn uint32
	LastLine    uint32
	LastColumn  uint32
}

// LocationOf resolves span against fs. Spans without a position yield a
// location that only names the file.
func LocationOf(fs *source.FileSet, fileName string, span source.Span) Location {
	loc := Location{File: fileName, Span: span}
	if fs == nil || !span.HasPos() {
		return loc
	}
	f := fs.Get(span.File)
	if f == nil || int(span.End) > len(f.Content) {
		return loc
	}
	first, last := fs.ResolveInclusive(span)
	loc.Known = true
	loc.FirstLine, loc.FirstColumn = first.Line, first.Col
	loc.LastLine, loc.LastColumn = last.Line, last.Col
	return loc
}

// Format renders "file:line:column", or just the file name when the
// position is unknown.
func (l Location) Format() string {
	if !l.Known {
		return l.File
	}
	return l.File + ":" + strconv.FormatUint(uint64(l.FirstLine), 10) +
		":" + strconv.FormatUint(uint64(l.FirstColumn), 10)
}

func (l Location) String() string { return l.Format() }
