package parser_test

import (
	"testing"

	"sexpfmt/internal/parser"
	"sexpfmt/internal/source"
)

// Повторный парс тривиального unparse обязан давать структурно тот же tree.
func TestRoundtrip(t *testing.T) {
	inputs := []string{
		`(a)`,
		`(a 1 2.5 -3 sym "str")`,
		`(board (layer 1 F.Cu signal) (thickness 1.6))`,
		`(pts (xy 1 2) (xy 3 4) (xy -5.5 6.25))`,
		`(a "x\"y" (b "with space" () (c)))`,
		`(module foo (at 1.0 2.0 90) (descr "a \"quoted\" descr"))`,
	}

	for _, input := range inputs {
		fs := source.NewFileSet()
		sf := fs.Get(fs.AddVirtual("t", []byte(input)))
		first, err := parser.Parse(sf, parser.Options{})
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}

		text := first.Text()

		fs2 := source.NewFileSet()
		sf2 := fs2.Get(fs2.AddVirtual("t2", []byte(text)))
		second, err := parser.Parse(sf2, parser.Options{})
		if err != nil {
			t.Fatalf("reparse %q (from %q): %v", text, input, err)
		}

		if !first.Equal(second) {
			t.Errorf("roundtrip mismatch:\n input: %s\nunparse: %s", input, text)
		}
	}
}
