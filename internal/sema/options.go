package sema

import (
	"fmt"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/library"
	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
)

// Options configure the analysis of one design file.
type Options struct {
	Reporter diag.Reporter
	FileSet  *source.FileSet
	// File is the parsed file; spans of nodes without a position fall back to it.
	File source.FileID
	// FileName is recorded in node locations and in "previous version" notes.
	FileName string
	// Library receives the analyzed design units.
	Library *library.Library
}

// UnsupportedError is the panic value for parse tree shapes the analyser
// does not model. It is never turned into a diagnostic.
type UnsupportedError struct {
	Tag  parsetree.Tag
	Func string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("sema: %s cannot handle %s", e.Func, e.Tag)
}

func unsupported(n *parsetree.Node, fn string) {
	tag := parsetree.TagInvalid
	if n != nil {
		tag = n.Tag
	}
	panic(&UnsupportedError{Tag: tag, Func: fn})
}
