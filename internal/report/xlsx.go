package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "MC-DC"

// WriteXLSX renders the tables into an Excel workbook at path. Layout
// mirrors the CSV writer: a bold header row per decision, one row per
// leaf condition, and an outcome row.
func WriteXLSX(path string, tables []Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	for _, t := range tables {
		if err := setRow(f, row, t.Decision.Filename, t.Decision.Line, t.Decision.Function, string(t.Decision.Kind), t.Decision.Expr); err != nil {
			return err
		}
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, start, end, headerStyle); err != nil {
			return err
		}
		row++

		for i, leaf := range t.Leaves {
			cells := []any{fmt.Sprintf("c%d", i), leaf}
			for _, p := range t.Patterns {
				cells = append(cells, string(p[i]))
			}
			if infeasibleLeaf(t, i) {
				cells = append(cells, "no independence pair")
			}
			if err := setRow(f, row, cells...); err != nil {
				return err
			}
			row++
		}

		cells := []any{"", "outcome"}
		for _, out := range t.Outcomes {
			cells = append(cells, tf(out))
		}
		if err := setRow(f, row, cells...); err != nil {
			return err
		}
		row += 2
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
