package format

// Format renders src in the canonical layout and returns a fresh buffer.
// The input is assumed to be balanced; Format itself never fails. On
// unbalanced input it still terminates and emits whatever layout the byte
// walk produces, so callers that need hard guarantees parse first.
func Format(src []byte, opts Options) []byte {
	f := formatter{
		src:  src,
		opts: opts,
		out:  make([]byte, 0, len(src)+len(src)/4),
	}
	f.run()
	return f.out
}

// FormatString is Format for string inputs.
func FormatString(src string, opts Options) string {
	return string(Format([]byte(src), opts))
}

// formatter — однопроходный конечный автомат поверх байтов src.
// Ни одного выделения на символ: только append в out.
type formatter struct {
	src  []byte
	opts Options
	out  []byte

	listDepth int
	// последний не-пробельный байт вне кавычек
	lastNonWS byte
	inQuote   bool
	// true пока текущая серия пробелов уже схлопнута в один разделитель
	hasInsertedSpace bool
	// список разъехался на несколько строк — закрывающая скобка на своей строке
	inMultiLineList bool
	// внутри цепочки "(xy ...)"
	inXY bool
	// внутри short-form списка (только compact-режим)
	inShortForm    bool
	shortFormDepth int
	column         int
	backslashes    int
}

func (f *formatter) run() {
	for cursor := 0; cursor < len(f.src); cursor++ {
		ch := f.src[cursor]

		// Пробелы вне кавычек схлопываются в один разделитель.
		if isWhitespace(ch) && !f.inQuote {
			next := f.nextNonWhitespace(cursor)
			if !f.hasInsertedSpace && f.listDepth > 0 &&
				f.lastNonWS != '(' && next != ')' && next != '(' {
				if f.inXY || f.column < consecutiveTokenWrapThreshold || f.inShortForm {
					f.out = append(f.out, ' ')
					f.column++
				} else {
					f.newlineIndent()
					f.inMultiLineList = true
				}
				f.hasInsertedSpace = true
			}
			continue
		}
		f.hasInsertedSpace = false

		switch {
		case ch == '(' && !f.inQuote:
			opensXY := f.isXYOpen(cursor)
			opensShort := f.opts.CompactSave && f.isShortFormOpen(cursor)

			switch {
			case len(f.out) == 0:
				// корневая скобка — без перевода строки
				f.emit('(')
			case f.inXY && opensXY && f.column < xySpecialCaseColumnLimit:
				f.emit(' ')
				f.emit('(')
			case f.inShortForm:
				f.emit(' ')
				f.emit('(')
			default:
				f.newlineIndent()
				f.emit('(')
			}

			f.inXY = opensXY
			if opensShort {
				f.inShortForm = true
				f.shortFormDepth = f.listDepth
			}
			f.listDepth++

		case ch == ')' && !f.inQuote:
			if f.listDepth > 0 {
				f.listDepth--
			}
			switch {
			case f.inShortForm:
				f.emit(')')
			case f.lastNonWS == ')' || f.inMultiLineList:
				f.newlineIndent()
				f.emit(')')
				f.inMultiLineList = false
			default:
				f.emit(')')
			}
			if f.inShortForm && f.shortFormDepth == f.listDepth {
				f.inShortForm = false
				f.shortFormDepth = 0
			}

		default:
			// бухгалтерия кавычек: чётная серия обратных слэшей не экранирует
			if ch == '\\' {
				f.backslashes++
			} else {
				if ch == quoteChar && f.backslashes%2 == 0 {
					f.inQuote = !f.inQuote
				}
				f.backslashes = 0
			}
			f.emit(ch)
		}

		if !isWhitespace(ch) {
			f.lastNonWS = ch
		}
	}

	// ровно один завершающий перевод строки
	f.out = append(f.out, '\n')
}

func (f *formatter) emit(ch byte) {
	f.out = append(f.out, ch)
	f.column++
}

func (f *formatter) newlineIndent() {
	f.out = append(f.out, '\n')
	for i := 0; i < f.listDepth; i++ {
		f.out = append(f.out, indentChar)
	}
	f.column = f.listDepth * indentSize
}

// nextNonWhitespace returns the first non-whitespace byte at or after idx,
// or 0 at end of input.
func (f *formatter) nextNonWhitespace(idx int) byte {
	for ; idx < len(f.src); idx++ {
		if !isWhitespace(f.src[idx]) {
			return f.src[idx]
		}
	}
	return 0
}

// isXYOpen reports whether the open paren at idx starts an "(xy " list.
// Проверка нарочно буквальная: ровно 'x', 'y', пробел.
func (f *formatter) isXYOpen(idx int) bool {
	return idx+3 < len(f.src) &&
		f.src[idx+1] == 'x' && f.src[idx+2] == 'y' && f.src[idx+3] == ' '
}

// isShortFormOpen reports whether the open paren at idx heads a list whose
// keyword belongs to the short-form set.
func (f *formatter) isShortFormOpen(idx int) bool {
	start := idx + 1
	end := start
	for end < len(f.src) && isAlpha(f.src[end]) {
		end++
	}
	if end == start {
		return false
	}
	_, ok := shortFormTokens[string(f.src[start:end])]
	return ok
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
