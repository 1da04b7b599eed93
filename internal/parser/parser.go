// Package parser assembles list-text tokens into a generic ast.Node tree.
// Nesting is handled with an explicit stack of in-progress accumulators, not
// recursion, so adversarially deep inputs cannot blow the goroutine stack.
// Tokenization and assembly happen in one left-to-right pass.
package parser

import (
	"strconv"

	"sexpfmt/internal/ast"
	"sexpfmt/internal/diag"
	"sexpfmt/internal/lexer"
	"sexpfmt/internal/source"
	"sexpfmt/internal/token"
)

type Options struct {
	// Reporter получает структурные ошибки и advisory-диагностики лексера.
	// Может быть nil.
	Reporter diag.Reporter
	// Interner дедуплицирует текст символов; общий Interner можно разделять
	// между файлами. Если nil, парсер заводит свой.
	Interner *source.Interner
}

// frame — накапливаемый список; open это span открывающей скобки.
type frame struct {
	items []ast.Node
	open  source.Span
}

// Parse scans the file and returns its single top-level expression.
func Parse(file *source.File, opts Options) (ast.Node, error) {
	interner := opts.Interner
	if interner == nil {
		interner = source.NewInterner()
	}

	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})

	var stack []frame
	current := frame{} // top-level accumulator

	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}

		switch tok.Kind {
		case token.LParen:
			stack = append(stack, current)
			current = frame{open: tok.Span}

		case token.RParen:
			if len(stack) == 0 {
				return ast.Node{}, fail(opts.Reporter, diag.SynUnbalancedClose, tok.Span,
					"close paren with no matching open")
			}
			list := ast.Node{
				Kind:  ast.List,
				Span:  current.open.Cover(tok.Span),
				Items: current.items,
			}
			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent.items = append(parent.items, list)
			current = parent

		default:
			current.items = append(current.items, atom(tok, interner))
		}
	}

	if len(stack) > 0 {
		return ast.Node{}, fail(opts.Reporter, diag.SynUnclosedList, current.open,
			"unclosed list at end of input")
	}
	if len(current.items) == 0 {
		sp := source.Span{File: file.ID}
		return ast.Node{}, fail(opts.Reporter, diag.SynNoExpression, sp,
			"no expression in input")
	}
	if len(current.items) > 1 {
		return ast.Node{}, fail(opts.Reporter, diag.SynMultipleRoots, current.items[1].Span,
			"more than one top-level expression")
	}
	return current.items[0], nil
}

// atom converts a literal token into its node, applying numeric coercion.
func atom(tok token.Token, interner *source.Interner) ast.Node {
	var n ast.Node
	switch tok.Kind {
	case token.IntLit:
		if v, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
			n = ast.NewInt(v)
		} else {
			// за пределами int64 — храним как число с коэрцией
			f, _ := strconv.ParseFloat(tok.Text, 64)
			n = ast.NewNumber(f)
		}
	case token.FloatLit:
		f, _ := strconv.ParseFloat(tok.Text, 64)
		n = ast.NewNumber(f)
	case token.StringLit:
		n = ast.NewString(ast.UnquoteString(tok.Text))
	default:
		n = ast.NewSymbol(interner.Intern(tok.Text))
	}
	n.Span = tok.Span
	return n
}

func fail(r diag.Reporter, code diag.Code, sp source.Span, msg string) error {
	if r != nil {
		r.Report(code, diag.SevError, sp, msg)
	}
	return &StructuralError{Code: code, Span: sp, Msg: msg}
}
