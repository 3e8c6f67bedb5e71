package parsetree

import (
	"encoding/json"
	"io"

	"vhdlsema/internal/ident"
	"vhdlsema/internal/source"
)

type jsonNode struct {
	Type        string      `json:"type"`
	Str         string      `json:"str,omitempty"`
	Chr         string      `json:"chr,omitempty"`
	FirstLine   uint32      `json:"first_line,omitempty"`
	FirstColumn uint32      `json:"first_column,omitempty"`
	LastLine    uint32      `json:"last_line,omitempty"`
	LastColumn  uint32      `json:"last_column,omitempty"`
	Pieces      []*jsonNode `json:"pieces,omitempty"`
}

// Print writes the tree as indented JSON. Positions are resolved through fs
// when it is non-nil. Empty slots are rendered as null so slot numbers stay visible.
func Print(w io.Writer, root *Node, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(root, fs))
}

func toJSON(n *Node, fs *source.FileSet) *jsonNode {
	if n == nil {
		return nil
	}
	out := &jsonNode{Type: n.Tag.String()}
	switch n.Tag {
	case TagBasicID, TagExtID, TagName:
		out.Str = ident.PrettyLatin1(n.Str)
	case TagLitChar:
		out.Chr = ident.PrettyByte(n.Chr)
	}
	if n.HasSpan && fs != nil {
		start, end := fs.Resolve(n.Span)
		out.FirstLine, out.FirstColumn = start.Line, start.Col
		out.LastLine, out.LastColumn = end.Line, end.Col
	}
	if len(n.Pieces) > 0 {
		out.Pieces = make([]*jsonNode, len(n.Pieces))
		for i, p := range n.Pieces {
			out.Pieces[i] = toJSON(p, fs)
		}
	}
	return out
}
