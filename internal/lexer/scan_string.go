package lexer

import (
	"sexpfmt/internal/diag"
	"sexpfmt/internal/token"
)

// Кавычка закрывает строку, только если перед ней чётное число обратных
// слэшей и следом идёт пробел или ')'. Иначе вся серия от открывающей
// кавычки лексится как символ (курсор откатывается к метке).
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	backslashes := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' && backslashes%2 == 0 {
			lx.cursor.Bump() // closing '"'
			if !isTerminator(lx.cursor.Peek()) {
				break
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}, true
		}
		if b == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		lx.cursor.Bump()
	}

	// EOF без закрывающей кавычки или плохой терминатор
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexStringFallback, diag.SevWarning, sp, "quoted run lexed as symbol")
	lx.cursor.Reset(start)
	return token.Token{}, false
}
