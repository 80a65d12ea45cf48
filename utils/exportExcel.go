package utils

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"roomplanner/models"
)

const (
	layoutSheet   = "Layout"
	warningsSheet = "Warnings"
)

// WriteLayoutExcel writes the placed items, a cost summary and the warnings
// as an .xlsx workbook.
func WriteLayoutExcel(w io.Writer, result models.LayoutResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), layoutSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Name", "Category", "X (m)", "Y (m)", "Width (m)", "Depth (m)", "Price"},
	}
	for _, p := range result.Placed {
		rows = append(rows, []interface{}{p.Name, p.Category, p.X, p.Y, p.Width, p.Depth, p.Price})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Room length (m)", result.Room.Length},
		[]interface{}{"Room width (m)", result.Room.Width},
		[]interface{}{"Budget", result.Room.Budget},
		[]interface{}{"Total cost", result.TotalCost},
		[]interface{}{"Remaining budget", result.RemainingBudget},
	)
	if err := setRows(f, layoutSheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(warningsSheet); err != nil {
		return err
	}
	warnings := [][]interface{}{{"Warning"}}
	for _, msg := range result.Warnings {
		warnings = append(warnings, []interface{}{msg})
	}
	if err := setRows(f, warningsSheet, warnings); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write layout workbook: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			return fmt.Errorf("fill sheet %s: %w", sheet, err)
		}
	}
	return nil
}
