package source

import (
	"fmt"
)

// Span is a half-open byte range inside one file.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Last returns the offset of the last byte covered by the span.
func (s Span) Last() uint32 {
	if s.End > s.Start {
		return s.End - 1
	}
	return s.Start
}

const noPos = ^uint32(0)

// FileSpan returns a span that names a file without pointing into it.
// Diagnostics built from nodes without position info use it.
func FileSpan(file FileID) Span {
	return Span{File: file, Start: noPos, End: noPos}
}

// HasPos reports whether the span points at concrete bytes.
func (s Span) HasPos() bool {
	return s.Start != noPos
}
