package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sexpfmt/internal/ast"
	"sexpfmt/internal/source"
)

// CheckNodeInvariants runs a minimal set of tree invariants on a parse result:
// 1) every span is non-empty, belongs to sf, and lies within content bounds
// 2) atoms carry no children
// 3) a list's span covers the spans of all its children
func CheckNodeInvariants(n ast.Node, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(n, sf, lenContent)
}

func checkNode(n ast.Node, sf *source.File, lenContent uint32) error {
	sp := n.Span
	if sp.End <= sp.Start {
		return fmt.Errorf("empty span %v on %v node", sp, n.Kind)
	}
	if sp.File != sf.ID {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, sf.ID)
	}
	if sp.End > lenContent {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, lenContent)
	}

	if n.IsAtom() && len(n.Items) != 0 {
		return fmt.Errorf("%v atom with %d children", n.Kind, len(n.Items))
	}

	for _, it := range n.Items {
		if it.Span.Start < sp.Start || it.Span.End > sp.End {
			return fmt.Errorf("child span %v outside list span %v", it.Span, sp)
		}
		if err := checkNode(it, sf, lenContent); err != nil {
			return err
		}
	}
	return nil
}
