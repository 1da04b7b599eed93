package parser

import (
	"fmt"

	"sexpfmt/internal/diag"
	"sexpfmt/internal/source"
)

// StructuralError is the single fatal error class of the parser: unbalanced
// or malformed bracket nesting. No partial tree accompanies it, and retrying
// the same input cannot change the outcome.
type StructuralError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}
