// Package testkit holds checks shared by parser, fuzz and driver tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"vhdlsema/internal/parsetree"
	"vhdlsema/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parse tree:
// 1) every span is non-empty, points at sf and lies within its content
// 2) every child span is contained in the nearest ancestor span
// 3) siblings appear in source order
func CheckSpanInvariants(root *parsetree.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(root, sf.ID, lenContent, source.Span{}, false)
}

func checkNode(n *parsetree.Node, file source.FileID, size uint32, outer source.Span, haveOuter bool) error {
	if n.HasSpan {
		sp := n.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("%s: empty span %v", n.Tag, sp)
		}
		if sp.File != file {
			return fmt.Errorf("%s: span file mismatch: got=%d want=%d", n.Tag, sp.File, file)
		}
		if sp.End > size {
			return fmt.Errorf("%s: span end beyond content: %d > %d", n.Tag, sp.End, size)
		}
		if haveOuter && (sp.Start < outer.Start || sp.End > outer.End) {
			return fmt.Errorf("%s: span %v is outside parent span %v", n.Tag, sp, outer)
		}
		outer, haveOuter = sp, true
	}

	var prevEnd uint32
	for _, p := range n.Pieces {
		if p == nil {
			continue
		}
		if p.HasSpan {
			if p.Span.Start < prevEnd {
				return fmt.Errorf("%s: child %s at %v overlaps previous sibling", n.Tag, p.Tag, p.Span)
			}
			prevEnd = p.Span.End
		}
		if err := checkNode(p, file, size, outer, haveOuter); err != nil {
			return err
		}
	}
	return nil
}
