package lexer

// ===== Классификаторы =====

// Пробельные символы — ровно те четыре, что знает канонический форматтер.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSign(b byte) bool { return b == '+' || b == '-' }

// isTerminator reports whether b may legally follow a number or string
// literal. The reference scanner requires whitespace or ')' after both;
// anything else demotes the whole run to a Symbol.
func isTerminator(b byte) bool {
	return isWhitespace(b) || b == ')'
}

// Символ — максимальная серия байтов без пробелов и скобок.
func isSymbolByte(b byte) bool {
	return !isWhitespace(b) && b != '(' && b != ')'
}
