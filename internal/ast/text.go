package ast

import (
	"strconv"
	"strings"
)

// Text renders the node back to list-text with single spaces and no layout.
// It is the trivial unparse: feeding the result through the canonical
// formatter yields the stable on-disk form.
func (n Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n Node) writeText(b *strings.Builder) {
	switch n.Kind {
	case List:
		b.WriteByte('(')
		for i, it := range n.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			it.writeText(b)
		}
		b.WriteByte(')')
	case Symbol:
		b.WriteString(n.Sym)
	case String:
		b.WriteString(QuoteString(n.Str))
	case Int:
		b.WriteString(strconv.FormatInt(n.Int, 10))
	case Float:
		b.WriteString(FormatFloat(n.Float))
	}
}

// QuoteString wraps content in double quotes, escaping interior quotes.
func QuoteString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// UnquoteString strips the surrounding quotes from a raw string token and
// unescapes interior \" sequences. The input must include both quotes.
func UnquoteString(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return strings.ReplaceAll(text, `\"`, `"`)
}
