// Package excelize provides a spreadsheet writer for scrape results.
package excelize

import (
	"os"
	"path/filepath"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/baluchebolu1975/webscraper-ai/fs"
	"github.com/xuri/excelize/v2"
)

// sheetName is the name of the single sheet written to each workbook.
const sheetName = "Results"

// Ensure Writer implements webscraper.ResultWriter at compile time.
var _ webscraper.ResultWriter = (*Writer)(nil)

// Writer writes pages as an XLSX workbook with one row per page.
// Columns match the CSV output.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write saves the pages as a workbook. Zero pages produce a header-only sheet.
func (w *Writer) Write(path string, pages []*webscraper.Page) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := writeRow(f, 1, fs.CSVHeader); err != nil {
		return err
	}
	for i, page := range pages {
		if err := writeRow(f, i+2, fs.CSVRecord(page)); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// writeRow writes string cells into the given 1-based row.
func writeRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheetName, cell, &values)
}
