package parser_test

import (
	"errors"
	"testing"

	"sexpfmt/internal/ast"
	"sexpfmt/internal/diag"
	"sexpfmt/internal/parser"
	"sexpfmt/internal/source"
	"sexpfmt/internal/testkit"
)

func parseString(t *testing.T, input string) (ast.Node, *source.File, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.kicad_pcb", []byte(input))
	sf := fs.Get(id)
	n, err := parser.Parse(sf, parser.Options{})
	return n, sf, err
}

func mustParse(t *testing.T, input string) ast.Node {
	t.Helper()
	n, sf, err := parseString(t, input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	if err := testkit.CheckNodeInvariants(n, sf); err != nil {
		t.Fatalf("invariants broken for %q: %v", input, err)
	}
	return n
}

func expectStructural(t *testing.T, input string, code diag.Code) {
	t.Helper()
	_, _, err := parseString(t, input)
	var se *parser.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("Parse(%q): expected StructuralError, got %v", input, err)
	}
	if se.Code != code {
		t.Errorf("Parse(%q): code = %v, want %v", input, se.Code, code)
	}
}

func TestParse_Basic(t *testing.T) {
	n := mustParse(t, `(board (layer 1 F.Cu signal) (thickness 1.6))`)
	if h, _ := n.Head(); h != "board" {
		t.Errorf("head = %q", h)
	}
	if len(n.Items) != 3 {
		t.Fatalf("items = %d", len(n.Items))
	}

	layer := n.Items[1]
	if h, _ := layer.Head(); h != "layer" {
		t.Errorf("layer head = %q", h)
	}
	if layer.Items[1].Kind != ast.Int || layer.Items[1].Int != 1 {
		t.Errorf("layer number = %+v", layer.Items[1])
	}

	th, ok := n.Get("thickness")
	if !ok || th.Items[1].Kind != ast.Float || th.Items[1].Float != 1.6 {
		t.Errorf("thickness = %+v ok=%v", th, ok)
	}
}

func TestParse_NumericCoercion(t *testing.T) {
	n := mustParse(t, `(a 1.0)`)
	if n.Items[1].Kind != ast.Int || n.Items[1].Int != 1 {
		t.Errorf("1.0 must coerce to Int 1, got %+v", n.Items[1])
	}

	n = mustParse(t, `(a 1.5)`)
	if n.Items[1].Kind != ast.Float || n.Items[1].Float != 1.5 {
		t.Errorf("1.5 must stay Float, got %+v", n.Items[1])
	}

	n = mustParse(t, `(a -3)`)
	if n.Items[1].Kind != ast.Int || n.Items[1].Int != -3 {
		t.Errorf("-3 must be Int, got %+v", n.Items[1])
	}
}

func TestParse_QuoteEscaping(t *testing.T) {
	n := mustParse(t, `(a "x\"y")`)
	if n.Items[1].Kind != ast.String || n.Items[1].Str != `x"y` {
		t.Errorf(`string = %+v, want x"y`, n.Items[1])
	}
}

func TestParse_Balance(t *testing.T) {
	expectStructural(t, `(a (b)`, diag.SynUnclosedList)
	expectStructural(t, `(a))`, diag.SynUnbalancedClose)
	expectStructural(t, ``, diag.SynNoExpression)
	expectStructural(t, `   `, diag.SynNoExpression)
	expectStructural(t, `(a) (b)`, diag.SynMultipleRoots)
}

func TestParse_DeepNesting(t *testing.T) {
	// явный стек аккумуляторов не должен зависеть от глубины рекурсии
	const depth = 100000
	input := make([]byte, 0, depth*2+1)
	for i := 0; i < depth; i++ {
		input = append(input, '(')
	}
	input = append(input, 'x')
	for i := 0; i < depth; i++ {
		input = append(input, ')')
	}

	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("deep", input))
	n, err := parser.Parse(sf, parser.Options{})
	if err != nil {
		t.Fatalf("deep parse failed: %v", err)
	}
	for i := 0; i < depth-1; i++ {
		if n.Kind != ast.List || len(n.Items) != 1 {
			t.Fatalf("level %d: %+v", i, n.Kind)
		}
		n = n.Items[0]
	}
}

func TestParse_ReportsToBag(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("bad", []byte("(a))")))
	bag := diag.NewBag(8)
	_, err := parser.Parse(sf, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !bag.HasErrors() {
		t.Error("structural error must be reported to the bag")
	}
	if bag.Items()[0].Code != diag.SynUnbalancedClose {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestParse_SharedInterner(t *testing.T) {
	in := source.NewInterner()
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a", []byte("(xy 1 2)")))
	b := fs.Get(fs.AddVirtual("b", []byte("(xy 3 4)")))

	na, err := parser.Parse(a, parser.Options{Interner: in})
	if err != nil {
		t.Fatal(err)
	}
	nb, err := parser.Parse(b, parser.Options{Interner: in})
	if err != nil {
		t.Fatal(err)
	}
	if in.Len() != 1 {
		t.Errorf("interner holds %d symbols, want 1", in.Len())
	}
	if na.Items[0].Sym != nb.Items[0].Sym {
		t.Error("shared interner must yield identical symbol text")
	}
}
