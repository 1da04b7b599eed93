package token

import (
	"sexpfmt/internal/source"
)

// Token represents a single list-text token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool {
	return t.Kind == IntLit || t.Kind == FloatLit
}

// IsAtom reports whether the token contributes an atom to the tree.
func (t Token) IsAtom() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, Symbol:
		return true
	default:
		return false
	}
}

// IsParen reports whether the token is an opening or closing parenthesis.
func (t Token) IsParen() bool {
	return t.Kind == LParen || t.Kind == RParen
}
