package fileio

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of a spreadsheet as rows of strings. An empty
// sheet name selects the first sheet.
func ReadXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %q: %w", sheet, path, err)
	}
	return rows, nil
}

// WriteXLSX writes rows of strings to one sheet of a new spreadsheet,
// overwriting any existing file. An empty sheet name uses the default
// sheet.
func WriteXLSX(path, sheet string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", r+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", r+1, path, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}
	return nil
}
