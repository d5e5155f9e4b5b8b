package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook is returned when an upload is not a readable XLSX file.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Workbook gives read access to the sheets of an uploaded spreadsheet.
type Workbook struct {
	file *excelize.File
}

// CellRef addresses a single cell by column letters and 1-based row.
type CellRef struct {
	Column string
	Row    int
}

// Axis returns the cell name, e.g. "B3".
func (c CellRef) Axis() string {
	return fmt.Sprintf("%s%d", c.Column, c.Row)
}

// Open reads an XLSX workbook from memory.
func Open(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if strings.Contains(err.Error(), "zip: not a valid zip file") {
			return nil, fmt.Errorf("%w: failed to open XLSX file: %v (only .xlsx workbooks are supported)", ErrInvalidWorkbook, err)
		}
		return nil, fmt.Errorf("%w: failed to open XLSX file: %v", ErrInvalidWorkbook, err)
	}
	return &Workbook{file: f}, nil
}

// New wraps an already opened excelize file.
func New(f *excelize.File) *Workbook {
	return &Workbook{file: f}
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Sheets returns the sheet titles in workbook order.
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// FindSheet returns the first sheet whose normalized title equals the
// normalized literal.
func (w *Workbook) FindSheet(literal string) (string, bool) {
	want := names.Normalize(literal)
	for _, sheet := range w.Sheets() {
		if names.Normalize(sheet) == want {
			return sheet, true
		}
	}
	return "", false
}

// FindSheetMatching returns the first sheet whose normalized title matches re.
func (w *Workbook) FindSheetMatching(re *regexp.Regexp) (string, bool) {
	sheets := w.FindSheetsMatching(re)
	if len(sheets) == 0 {
		return "", false
	}
	return sheets[0], true
}

// FindSheetsMatching returns every sheet whose normalized title matches re.
func (w *Workbook) FindSheetsMatching(re *regexp.Regexp) []string {
	var found []string
	for _, sheet := range w.Sheets() {
		if re.MatchString(names.Normalize(sheet)) {
			found = append(found, sheet)
		}
	}
	return found
}

// FindSheetsContaining returns every sheet whose normalized title contains
// the normalized fragment.
func (w *Workbook) FindSheetsContaining(fragment string) []string {
	want := names.Normalize(fragment)
	var found []string
	for _, sheet := range w.Sheets() {
		if strings.Contains(names.Normalize(sheet), want) {
			found = append(found, sheet)
		}
	}
	return found
}

// FindHeaderCell scans the occupied cells of a sheet row by row and returns
// the first whose trimmed value is exactly text.
func (w *Workbook) FindHeaderCell(sheet, text string) (CellRef, bool, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return CellRef{}, false, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	for r, row := range rows {
		for c, value := range row {
			if strings.TrimSpace(value) != text {
				continue
			}
			column, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return CellRef{}, false, err
			}
			return CellRef{Column: column, Row: r + 1}, true, nil
		}
	}
	return CellRef{}, false, nil
}

// Value returns the trimmed formatted text of a cell.
func (w *Workbook) Value(sheet, axis string) (string, error) {
	value, err := w.file.GetCellValue(sheet, axis)
	if err != nil {
		return "", fmt.Errorf("failed to read %s!%s: %w", sheet, axis, err)
	}
	return strings.TrimSpace(value), nil
}

// IsEmpty reports whether a cell value is absent or whitespace only.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}
