package fuzztests

import (
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

func addCorpusSeeds(f *testing.F) {
	seeds := []string{
		"",
		"(a)",
		"()",
		"(board (layer 1 F.Cu signal) (thickness 1.6))",
		"(pts (xy 1 2) (xy 3 4) (xy -5.5 6.25))",
		`(module foo (at 1.0 2.0 90) (descr "a \"quoted\" descr"))`,
		`(a "multi\nline\\" b)`,
		"(a (b (c (d (e)))))",
		"(a))",
		"(a (b",
		`"unterminated`,
		"(+5 -3 1. 1.2.3 42)",
		"(pad (stroke (width 0.1) (type solid)))",
	}
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
