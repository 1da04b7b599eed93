package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические. Лексер тотален (любой вход токенизируется),
	// поэтому здесь только предупреждения о fallback-ах.
	LexInfo           Code = 1000
	LexStringFallback Code = 1001
	LexNumberFallback Code = 1002

	// Структурные (парсер)
	SynInfo            Code = 2000
	SynUnbalancedClose Code = 2001
	SynUnclosedList    Code = 2002
	SynNoExpression    Code = 2003
	SynMultipleRoots   Code = 2004

	// I/O
	IOLoadFileError Code = 9000
)

// ID returns the stable machine-readable identifier, e.g. "SX2001".
func (c Code) ID() string {
	return fmt.Sprintf("SX%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "Unknown"
	case LexInfo:
		return "LexInfo"
	case LexStringFallback:
		return "LexStringFallback"
	case LexNumberFallback:
		return "LexNumberFallback"
	case SynInfo:
		return "SynInfo"
	case SynUnbalancedClose:
		return "SynUnbalancedClose"
	case SynUnclosedList:
		return "SynUnclosedList"
	case SynNoExpression:
		return "SynNoExpression"
	case SynMultipleRoots:
		return "SynMultipleRoots"
	case IOLoadFileError:
		return "IOLoadFileError"
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
