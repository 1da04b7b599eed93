package lexer_test

import (
	"testing"

	"sexpfmt/internal/diag"
	"sexpfmt/internal/lexer"
	"sexpfmt/internal/source"
	"sexpfmt/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kicad_pcb", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %v", len(expected), len(tokens), input, tokens)
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Errorf("token %d: kind = %v, want %v (text %q)", i, tokens[i].Kind, want, tokens[i].Text)
		}
	}
	return tokens
}

func TestLexer_Basic(t *testing.T) {
	toks := expectTokens(t, `(layer 1 F.Cu signal)`, []token.Kind{
		token.LParen, token.Symbol, token.IntLit, token.Symbol, token.Symbol, token.RParen,
	})
	if toks[1].Text != "layer" {
		t.Errorf("symbol text = %q", toks[1].Text)
	}
	if toks[2].Text != "1" {
		t.Errorf("int text = %q", toks[2].Text)
	}
}

func TestLexer_Numbers(t *testing.T) {
	cases := []struct {
		input string
		kinds []token.Kind
	}{
		// терминатор ')' делает серию числом
		{"(1.5)", []token.Kind{token.LParen, token.FloatLit, token.RParen}},
		{"(-3)", []token.Kind{token.LParen, token.IntLit, token.RParen}},
		{"(+2.0)", []token.Kind{token.LParen, token.FloatLit, token.RParen}},
		// '+' допустим только у float
		{"(+5)", []token.Kind{token.LParen, token.Symbol, token.RParen}},
		// неполная дробь и хвосты — символы
		{"(1.)", []token.Kind{token.LParen, token.Symbol, token.RParen}},
		{"(1.2.3)", []token.Kind{token.LParen, token.Symbol, token.RParen}},
		{"(3V3)", []token.Kind{token.LParen, token.Symbol, token.RParen}},
		// число на конце ввода без терминатора — символ (как у эталона)
		{"42", []token.Kind{token.Symbol}},
	}
	for _, c := range cases {
		expectTokens(t, c.input, c.kinds)
	}
}

func TestLexer_Strings(t *testing.T) {
	toks := expectTokens(t, `(name "hello world")`, []token.Kind{
		token.LParen, token.Symbol, token.StringLit, token.RParen,
	})
	if toks[2].Text != `"hello world"` {
		t.Errorf("string text = %q", toks[2].Text)
	}

	// экранированная кавычка внутри
	toks = expectTokens(t, `(a "x\"y")`, []token.Kind{
		token.LParen, token.Symbol, token.StringLit, token.RParen,
	})
	if toks[2].Text != `"x\"y"` {
		t.Errorf("string text = %q", toks[2].Text)
	}

	// чётное число слэшей перед кавычкой — кавычка закрывающая
	expectTokens(t, `(a "x\\")`, []token.Kind{
		token.LParen, token.Symbol, token.StringLit, token.RParen,
	})
}

func TestLexer_StringFallback(t *testing.T) {
	// закрывающая кавычка не перед пробелом/')' — вся серия символ
	lx, bag := makeTestLexer(`("a"b)`)
	tokens := collectAllTokens(lx)
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	if tokens[1].Kind != token.Symbol || tokens[1].Text != `"a"b` {
		t.Errorf("token = %v %q, want Symbol %q", tokens[1].Kind, tokens[1].Text, `"a"b`)
	}
	if !bag.HasWarnings() {
		t.Error("expected LexStringFallback warning")
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"abc`)
	tokens := collectAllTokens(lx)
	if len(tokens) != 1 || tokens[0].Kind != token.Symbol || tokens[0].Text != `"abc` {
		t.Fatalf("got %v", tokens)
	}
	if !bag.HasWarnings() {
		t.Error("expected fallback warning")
	}
}

func TestLexer_SymbolStopsAtParens(t *testing.T) {
	expectTokens(t, "a(b)c", []token.Kind{
		token.Symbol, token.LParen, token.Symbol, token.RParen, token.Symbol,
	})
}

func TestLexer_Whitespace(t *testing.T) {
	expectTokens(t, " \t\r\n ( a\n\tb ) ", []token.Kind{
		token.LParen, token.Symbol, token.Symbol, token.RParen,
	})
}

func TestLexer_Peek(t *testing.T) {
	lx, _ := makeTestLexer("(xy)")
	if got := lx.Peek().Kind; got != token.LParen {
		t.Fatalf("Peek = %v", got)
	}
	if got := lx.Next().Kind; got != token.LParen {
		t.Fatalf("Next after Peek = %v", got)
	}
	if got := lx.Next().Kind; got != token.Symbol {
		t.Fatalf("second Next = %v", got)
	}
}

func TestLexer_Spans(t *testing.T) {
	lx, _ := makeTestLexer(`(at 1.5 -3)`)
	toks := collectAllTokens(lx)
	// "(at 1.5 -3)" — "1.5" at bytes 4..7, "-3" at 8..10
	if toks[2].Span.Start != 4 || toks[2].Span.End != 7 {
		t.Errorf("float span = %v", toks[2].Span)
	}
	if toks[3].Span.Start != 8 || toks[3].Span.End != 10 {
		t.Errorf("int span = %v", toks[3].Span)
	}
}
