package lexer

import (
	"sexpfmt/internal/diag"
	"sexpfmt/internal/token"
)

// Эталонные правила:
//   - float: [+-]?digits.digits, следом пробел или ')'
//   - int:   -?digits, следом пробел или ')'
//
// Знак '+' допустим только у float — "+5" это символ, "+5.0" это float.
// Несовпадение терминатора откатывает курсор, и серия лексится как символ.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()

	hasPlus := lx.cursor.Peek() == '+'
	if isSign(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.IntLit
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.FloatLit
	}

	ok := isTerminator(lx.cursor.Peek())
	if hasPlus && kind == token.IntLit {
		ok = false
	}

	if !ok {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexNumberFallback, diag.SevInfo, sp, "numeric-looking run lexed as symbol")
		lx.cursor.Reset(start)
		return token.Token{}, false
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}, true
}
