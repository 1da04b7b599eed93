package ast

import (
	"strconv"
	"strings"
)

// FormatFloat renders a float in fixed notation with trailing zeros (and a
// bare trailing dot) stripped, matching the reference tool's number output.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseBool reads a boolean field in either of the encodings the file format
// has used over time: the old bare flag (`hide`) or the new keyed pair
// (`(hide yes)` / `(hide no)`).
func ParseBool(n Node, key string) bool {
	if n.Kind == Symbol {
		return n.Sym == key
	}
	if n.Kind == List && len(n.Items) == 2 {
		h, ok := n.Head()
		if !ok || h != key {
			return false
		}
		v := n.Items[1]
		switch v.Kind {
		case Symbol:
			return strings.EqualFold(v.Sym, "yes")
		case String:
			return strings.EqualFold(v.Str, "yes")
		}
	}
	return false
}

// FormatBool renders a boolean field; false renders to nothing, true to the
// compact bare form or the keyed pair.
func FormatBool(key string, value, compact bool) string {
	if !value {
		return ""
	}
	if compact {
		return "(" + key + ")"
	}
	return "(" + key + " yes)"
}
