package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sexpfmt/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func severityLabel(sev Severity, colorize bool) string {
	if !colorize {
		return sev.String()
	}
	switch sev {
	case SevError:
		return errColor.Sprint(sev.String())
	case SevWarning:
		return warnColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

// Render formats one diagnostic as a stable single-header line
//
//	SEVERITY SXnnnn path:line:col message
//
// followed by the offending source line and a caret marker. The caret column
// accounts for tabs and wide runes in the excerpt prefix.
func Render(d Diagnostic, fs *source.FileSet, colorize bool) string {
	var b strings.Builder

	if fs == nil || int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(&b, "%s %s %s", severityLabel(d.Severity, colorize), d.Code.ID(), d.Message)
		return b.String()
	}

	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(&b, "%s %s %s:%d:%d %s",
		severityLabel(d.Severity, colorize), d.Code.ID(), f.Path, start.Line, start.Col, d.Message)

	line := f.GetLine(start.Line)
	if line != "" {
		b.WriteByte('\n')
		b.WriteString("  ")
		b.WriteString(expandTabs(line))
		b.WriteByte('\n')
		b.WriteString("  ")
		// ширина префикса до каретки с учётом табов и широких рун
		prefix := line
		if int(start.Col-1) <= len(line) {
			prefix = line[:start.Col-1]
		}
		b.WriteString(strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix))))
		b.WriteString("^")
	}

	for _, n := range d.Notes {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  note: %s", n.Msg)
	}
	return b.String()
}

// RenderBag renders all diagnostics in the bag, one per paragraph.
func RenderBag(bag *Bag, fs *source.FileSet, colorize bool) string {
	items := bag.Items()
	parts := make([]string, 0, len(items))
	for _, d := range items {
		parts = append(parts, Render(d, fs, colorize))
	}
	return strings.Join(parts, "\n")
}

const tabStop = 4

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
