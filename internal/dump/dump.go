// Package dump renders the design database as indented JSON for debugging.
// The output is deterministic for a given database: libraries, units and
// declarations appear in the order they were added. Enumeration literals
// are listed only under their type.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"vhdlsema/internal/ast"
	"vhdlsema/internal/ident"
	"vhdlsema/internal/library"
)

// DatabaseJSON корневая структура дампа
type DatabaseJSON struct {
	Libraries []LibraryJSON `json:"libraries"`
}

type LibraryJSON struct {
	Name     string     `json:"name"`
	Extended bool       `json:"extended,omitempty"`
	Units    []NodeJSON `json:"units"`
}

// LocationJSON mirrors ast.Location; positions are omitted when unknown.
type LocationJSON struct {
	File        string `json:"file"`
	FirstLine   uint32 `json:"first_line,omitempty"`
	FirstColumn uint32 `json:"first_column,omitempty"`
	LastLine    uint32 `json:"last_line,omitempty"`
	LastColumn  uint32 `json:"last_column,omitempty"`
}

// NodeJSON is one analyzed node. Fields not meaningful for a kind stay empty.
type NodeJSON struct {
	Kind         string        `json:"kind"`
	Name         string        `json:"name"`
	Canonical    string        `json:"canonical,omitempty"`
	Extended     bool          `json:"extended,omitempty"`
	Location     *LocationJSON `json:"location,omitempty"`
	Index        *uint64       `json:"index,omitempty"`
	Type         string        `json:"type,omitempty"`
	Base         string        `json:"base,omitempty"`
	Declarations []NodeJSON    `json:"declarations,omitempty"`
	Literals     []NodeJSON    `json:"literals,omitempty"`
}

// Build converts db into its JSON model without serializing it.
func Build(db *library.DesignDatabase) DatabaseJSON {
	out := DatabaseJSON{Libraries: make([]LibraryJSON, 0, len(db.Libraries()))}
	for _, lib := range db.Libraries() {
		lj := LibraryJSON{
			Name:     lib.ID().Pretty(),
			Extended: lib.ID().Extended(),
			Units:    make([]NodeJSON, 0, len(lib.Units())),
		}
		for _, u := range lib.Units() {
			lj.Units = append(lj.Units, node(u))
		}
		out.Libraries = append(out.Libraries, lj)
	}
	return out
}

// Database writes db as indented JSON.
func Database(w io.Writer, db *library.DesignDatabase) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(db)); err != nil {
		return fmt.Errorf("dump database: %w", err)
	}
	return nil
}

func node(n ast.Node) NodeJSON {
	nj := NodeJSON{Kind: n.Kind().String(), Name: n.Display()}
	if l, ok := n.(ast.Located); ok {
		nj.Location = location(l.Location())
	}

	switch v := n.(type) {
	case *ast.Entity:
		setIdent(&nj, v.ID)
		if v.Region != nil {
			for _, d := range v.Region.Declarations() {
				// литералы выводятся под своим типом
				if _, isLit := d.(*ast.EnumerationLitDecl); isLit {
					continue
				}
				nj.Declarations = append(nj.Declarations, node(d))
			}
		}
	case *ast.EnumerationTypeDecl:
		setIdent(&nj, v.ID)
		for _, lit := range v.Literals {
			nj.Literals = append(nj.Literals, node(lit))
		}
	case *ast.EnumerationLitDecl:
		if !v.IsCharLit {
			setIdent(&nj, v.ID)
		}
		idx := v.Index
		nj.Index = &idx
		if v.Type != nil {
			nj.Type = v.Type.Display()
		}
	case *ast.SubtypeDecl:
		setIdent(&nj, v.ID)
		if v.Base != nil {
			nj.Base = v.Base.Display()
		}
	}
	return nj
}

func setIdent(nj *NodeJSON, id ident.Identifier) {
	nj.Canonical = ident.PrettyLatin1(id.Canonical())
	nj.Extended = id.Extended()
}

func location(l ast.Location) *LocationJSON {
	lj := &LocationJSON{File: l.File}
	if l.Known {
		lj.FirstLine, lj.FirstColumn = l.FirstLine, l.FirstColumn
		lj.LastLine, lj.LastColumn = l.LastLine, l.LastColumn
	}
	return lj
}
