package lexer

import (
	"sexpfmt/internal/token"
)

func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSymbolByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Symbol, Span: sp, Text: lx.text(sp)}
}
