package token

// Kind represents the category of a list-text token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents an opening parenthesis.
	LParen // (
	// RParen represents a closing parenthesis.
	RParen // )

	// IntLit represents a bare integer literal.
	IntLit
	// FloatLit represents a decimal literal with a fractional part.
	FloatLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// Symbol represents a bare symbol (any other non-whitespace run).
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case StringLit:
		return "StringLit"
	case Symbol:
		return "Symbol"
	}
	return "Unknown"
}
