package format

// Options управляет единственной развилкой канонического вывода.
type Options struct {
	// CompactSave folds lists headed by a short-form keyword onto their
	// parent's line instead of breaking them out. Matches the editor's
	// "compact save" layout; off by default.
	CompactSave bool
}

const (
	quoteChar  = '"'
	indentChar = '\t'
	indentSize = 1

	// Колонка, после которой цепочка атомов переносится на новую строку.
	consecutiveTokenWrapThreshold = 72

	// "(xy ...)" chains stay inline up to this column regardless of the
	// token wrap threshold above.
	xySpecialCaseColumnLimit = 99
)

// shortFormTokens — закрытый набор ключевых слов compact-режима.
// Расширять нельзя: раскладка обязана совпадать с эталонной побайтово.
var shortFormTokens = map[string]struct{}{
	"font":     {},
	"stroke":   {},
	"fill":     {},
	"teardrop": {},
	"offset":   {},
	"rotate":   {},
	"scale":    {},
}
