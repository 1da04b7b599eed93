package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"sexpfmt/internal/diagfmt"
	"sexpfmt/internal/lexer"
	"sexpfmt/internal/parser"
	"sexpfmt/internal/source"
	"sexpfmt/internal/token"
)

func parseInput(t *testing.T, input string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.kicad_pcb", []byte(input)))
	return fs, sf
}

func TestFormatTokensPretty(t *testing.T) {
	fs, sf := parseInput(t, `(layer 1 "F.Cu")`)
	lx := lexer.New(sf, lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"LParen", `Symbol    "layer"`, `Int       "1"`, "at 1:8-1:9", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTreeJSON(t *testing.T) {
	_, sf := parseInput(t, `(at 1.0 2.5 "x")`)
	root, err := parser.Parse(sf, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTreeJSON(&buf, root); err != nil {
		t.Fatal(err)
	}

	var got diagfmt.NodeOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != "List" || len(got.Items) != 4 {
		t.Fatalf("root = %+v", got)
	}
	if got.Items[0].Kind != "Symbol" || got.Items[0].Value != "at" {
		t.Errorf("items[0] = %+v", got.Items[0])
	}
	// коэрция чисел видна и в дампе: 1.0 сериализуется как целое
	if got.Items[1].Kind != "Int" {
		t.Errorf("items[1] = %+v", got.Items[1])
	}
	if got.Items[2].Kind != "Float" {
		t.Errorf("items[2] = %+v", got.Items[2])
	}
}

func TestFormatTreeMsgpackRoundtrip(t *testing.T) {
	_, sf := parseInput(t, `(board (thickness 1.6))`)
	root, err := parser.Parse(sf, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTreeMsgpack(&buf, root); err != nil {
		t.Fatal(err)
	}

	var got diagfmt.NodeOutput
	if err := msgpack.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != "List" || len(got.Items) != 2 {
		t.Fatalf("decoded = %+v", got)
	}
	if got.Items[1].Items[0].Value != "thickness" {
		t.Errorf("decoded = %+v", got.Items[1])
	}
}

func TestFormatTreePretty(t *testing.T) {
	fs, sf := parseInput(t, `(a (b 2))`)
	root, err := parser.Parse(sf, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTreePretty(&buf, root, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"List (span: 1:1-1:10)", "  Symbol a", "    Int 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTreeSexpr(t *testing.T) {
	_, sf := parseInput(t, "(a   (b\t2))")
	root, err := parser.Parse(sf, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTreeSexpr(&buf, root); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(a (b 2))\n" {
		t.Errorf("sexpr = %q", buf.String())
	}
}
