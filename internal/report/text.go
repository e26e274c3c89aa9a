package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	fileStyle    = color.New(color.FgCyan, color.Bold)
	funcStyle    = color.New(color.FgBlue, color.Bold)
	exprStyle    = color.New(color.FgYellow)
	trueStyle    = color.New(color.FgGreen, color.Bold)
	falseStyle   = color.New(color.FgRed, color.Bold)
	warnStyle    = color.New(color.FgMagenta, color.Bold)
	outcomeStyle = color.New(color.Bold)
)

// WriteText renders the tables as a colored terminal report. One block
// per decision: location header, the decision expression, then a grid
// with one row per leaf condition and a final outcome row, one column
// per generated pattern.
func WriteText(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeTextTable(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTextTable(w io.Writer, t Table) error {
	var b strings.Builder

	b.WriteString(fileStyle.Sprintf("%s:%d", t.Decision.Filename, t.Decision.Line))
	if t.Decision.Function != "" {
		b.WriteString(" " + funcStyle.Sprintf("(%s)", t.Decision.Function))
	}
	b.WriteString(fmt.Sprintf(" [%s]\n", t.Decision.Kind))
	b.WriteString("  " + exprStyle.Sprint(t.Decision.Expr) + "\n")

	width := 0
	for _, leaf := range t.Leaves {
		if len(leaf) > width {
			width = len(leaf)
		}
	}
	if len("outcome") > width {
		width = len("outcome")
	}

	for i, leaf := range t.Leaves {
		b.WriteString(fmt.Sprintf("  c%-2d %-*s ", i, width, leaf))
		for _, p := range t.Patterns {
			b.WriteString(" " + cell(p[i] == 'T'))
		}
		if infeasibleLeaf(t, i) {
			b.WriteString("  " + warnStyle.Sprint("(no independence pair)"))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("      %s ", outcomeStyle.Sprintf("%-*s", width, "outcome")))
	for _, out := range t.Outcomes {
		b.WriteString(" " + cell(out))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func cell(v bool) string {
	if v {
		return trueStyle.Sprint("T")
	}
	return falseStyle.Sprint("F")
}

func infeasibleLeaf(t Table, i int) bool {
	for _, idx := range t.Infeasible {
		if idx == i {
			return true
		}
	}
	return false
}
