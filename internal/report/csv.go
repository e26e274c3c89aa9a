package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV renders the tables as CSV. Each decision becomes a header
// row, one row per leaf condition with its truth value under every
// pattern, an outcome row, and a blank separator row.
func WriteCSV(w io.Writer, tables []Table) error {
	cw := csv.NewWriter(w)
	for _, t := range tables {
		header := []string{t.Decision.Filename, strconv.Itoa(t.Decision.Line), t.Decision.Function, string(t.Decision.Kind), t.Decision.Expr}
		if err := cw.Write(header); err != nil {
			return err
		}
		for i, leaf := range t.Leaves {
			row := make([]string, 0, len(t.Patterns)+2)
			row = append(row, "c"+strconv.Itoa(i), leaf)
			for _, p := range t.Patterns {
				row = append(row, string(p[i]))
			}
			if infeasibleLeaf(t, i) {
				row = append(row, "no independence pair")
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		outcome := make([]string, 0, len(t.Patterns)+2)
		outcome = append(outcome, "", "outcome")
		for _, out := range t.Outcomes {
			outcome = append(outcome, tf(out))
		}
		if err := cw.Write(outcome); err != nil {
			return err
		}
		if err := cw.Write([]string{""}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func tf(v bool) string {
	if v {
		return "T"
	}
	return "F"
}
