// Package decode turns uploaded shift sheet bytes into tabular rows.
//
// The import engine never opens binary containers itself: it consumes a
// Table of already-tokenized cells plus a resolver for spreadsheet-internal
// date serials. CSV cells are always strings. Spreadsheet cells arrive as
// float64 whenever the container stores a numeric value, which is how date
// serials and literal zeros survive into the engine with their type intact.
package decode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxSheetRows caps how many rows are read from a legacy .xls worksheet.
const maxSheetRows = 100000

// Table is an ordered sequence of data rows beneath a single header row.
// Cells are untyped: string or float64.
type Table struct {
	Headers []string
	Rows    [][]any
}

// CSV reads a comma-separated sheet, header row first. Every cell stays a
// string; ragged rows are tolerated.
func CSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]any, len(rec))
		for i, cell := range rec {
			row[i] = cell
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// Spreadsheet reads the first worksheet of an .xlsx or legacy .xls container.
// The header row keeps its display text; data cells holding numeric values
// are typed to float64.
func Spreadsheet(r io.Reader, filename string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		rows, err = readXLS(data)
	default:
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([][]any, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		row := make([]any, len(rec))
		for i, cell := range rec {
			row[i] = typeCell(cell)
		}
		out = append(out, row)
	}

	return &Table{Headers: headers, Rows: out}, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	// Raw values keep date cells as their numeric serials instead of the
	// container's display format.
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	return workbook.ReadAllCells(maxSheetRows), nil
}

// typeCell restores the numeric type a spreadsheet cell had inside its
// container. Anything that is not fully numeric stays text.
func typeCell(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

// ExcelDate resolves a spreadsheet-internal numeric date code to a calendar
// date in the 1900 date system.
func ExcelDate(serial float64) (time.Time, error) {
	return excelize.ExcelDateToTime(serial, false)
}
