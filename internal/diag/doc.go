// Package diag carries diagnostics produced by the lexer and parser.
// A Bag collects diagnostics with a cap; Reporter is the minimal contract
// the phases emit through. Rendering to human-readable text lives in
// render.go and is only used by the CLI layer.
package diag
