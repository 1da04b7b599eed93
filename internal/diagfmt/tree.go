package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"sexpfmt/internal/ast"
	"sexpfmt/internal/source"
)

// NodeOutput is the serialized shape of one tree node. Value is a string for
// symbols and strings, an integer or a float for numbers, absent for lists.
type NodeOutput struct {
	Kind  string       `json:"kind" msgpack:"kind"`
	Value any          `json:"value,omitempty" msgpack:"value,omitempty"`
	Items []NodeOutput `json:"items,omitempty" msgpack:"items,omitempty"`
}

// BuildTree converts a parsed node into its serializable form.
func BuildTree(n ast.Node) NodeOutput {
	out := NodeOutput{Kind: n.Kind.String()}
	switch n.Kind {
	case ast.Symbol:
		out.Value = n.Sym
	case ast.String:
		out.Value = n.Str
	case ast.Int:
		out.Value = n.Int
	case ast.Float:
		out.Value = n.Float
	case ast.List:
		if len(n.Items) > 0 {
			out.Items = make([]NodeOutput, 0, len(n.Items))
			for _, it := range n.Items {
				out.Items = append(out.Items, BuildTree(it))
			}
		}
	}
	return out
}

// FormatTreePretty выводит дерево с отступами и позициями узлов.
func FormatTreePretty(w io.Writer, n ast.Node, fs *source.FileSet) error {
	return writeTreePretty(w, n, fs, 0)
}

func writeTreePretty(w io.Writer, n ast.Node, fs *source.FileSet, depth int) error {
	indent := strings.Repeat("  ", depth)

	label := n.Kind.String()
	switch n.Kind {
	case ast.Symbol:
		label += fmt.Sprintf(" %s", n.Sym)
	case ast.String:
		label += fmt.Sprintf(" %q", n.Str)
	case ast.Int:
		label += fmt.Sprintf(" %d", n.Int)
	case ast.Float:
		label += fmt.Sprintf(" %s", ast.FormatFloat(n.Float))
	}

	if fs != nil && !n.Span.Empty() {
		start, end := fs.Resolve(n.Span)
		label += fmt.Sprintf(" (span: %d:%d-%d:%d)", start.Line, start.Col, end.Line, end.Col)
	}

	if _, err := fmt.Fprintf(w, "%s%s\n", indent, label); err != nil {
		return err
	}
	for _, it := range n.Items {
		if err := writeTreePretty(w, it, fs, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// FormatTreeSexpr prints the tree back as one-line list text.
func FormatTreeSexpr(w io.Writer, n ast.Node) error {
	_, err := fmt.Fprintln(w, n.Text())
	return err
}

// FormatTreeJSON выводит дерево в JSON формате
func FormatTreeJSON(w io.Writer, n ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildTree(n))
}

// FormatTreeMsgpack пишет то же дерево в бинарном виде.
func FormatTreeMsgpack(w io.Writer, n ast.Node) error {
	return msgpack.NewEncoder(w).Encode(BuildTree(n))
}
