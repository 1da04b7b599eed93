// Package diagfmt renders pipeline artifacts (token streams, trees) for the
// CLI. Output formats are stable: scripts parse the JSON and msgpack shapes.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"sexpfmt/internal/source"
	"sexpfmt/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind" msgpack:"kind"`
	Text string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Span source.Span `json:"span" msgpack:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-9s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func buildTokenOutputs(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		})
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildTokenOutputs(tokens))
}

// FormatTokensMsgpack пишет тот же массив токенов в бинарном виде.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(buildTokenOutputs(tokens))
}
