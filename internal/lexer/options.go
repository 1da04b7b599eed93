package lexer

import (
	"sexpfmt/internal/diag"
	"sexpfmt/internal/source"
)

type Options struct {
	// Reporter может быть nil — тогда advisory-диагностики игнорируем
	// (лексер тотален и продолжает в любом случае).
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg)
	}
}
