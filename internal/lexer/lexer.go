package lexer

import (
	"sexpfmt/internal/source"
	"sexpfmt/internal/token"
)

// Lexer scans list-text into tokens. It is total: every input tokenizes,
// numeric and string runs that miss their required terminator fall back to
// Symbol exactly like the reference scanner.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) Пропускаем пробелы (грамматика без комментариев — trivia нет)
	for !lx.cursor.EOF() && isWhitespace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	// 3) Выбор сканера в порядке приоритета эталонной грамматики
	ch := lx.cursor.Peek()

	switch {
	case ch == '(':
		return lx.scanParen(token.LParen)

	case ch == ')':
		return lx.scanParen(token.RParen)

	case isDec(ch), isSign(ch) && isDec(lx.cursor.PeekAt(1)):
		if tok, ok := lx.scanNumber(); ok {
			return tok
		}
		// не число — максимальная серия становится символом
		return lx.scanSymbol()

	case ch == '"':
		if tok, ok := lx.scanString(); ok {
			return tok
		}
		return lx.scanSymbol()

	default:
		return lx.scanSymbol()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) scanParen(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
