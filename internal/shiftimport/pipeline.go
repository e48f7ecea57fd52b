package shiftimport

// pipeline.go orchestrates a single import: file-kind dispatch by extension,
// decode, layout detection, then exactly one extraction branch. Every
// failure mode comes back inside the ImportResult; the pipeline never
// returns a Go error for malformed input.

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/restaura/shiftsheet/internal/decode"
	"github.com/restaura/shiftsheet/internal/logging"
)

const (
	errUnsupportedFormat = "Unsupported file format. Please use .csv or .xlsx files."
	errNoData            = "No data found in file"
)

// Importer drives shift sheet imports. It is stateless per call; a zero
// Importer is usable and scopes matrix sheets to the current system month.
type Importer struct {
	// DefaultYear and DefaultMonth scope matrix sheets, which carry no
	// year or month of their own. Zero values fall back to the host's
	// current year and month.
	DefaultYear  int
	DefaultMonth int
}

// Import ingests one uploaded shift sheet. The declared filename is the sole
// file-kind selector; content sniffing is not performed.
func (imp Importer) Import(ctx context.Context, filename string, r io.Reader) *ImportResult {
	log := logging.FromContext(ctx)

	var (
		table   *decode.Table
		resolve DateResolver
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		table, err = decode.CSV(r)
		if err != nil {
			log.Warn("csv decode failed", "file", filename, "error", err)
			return invalidResult(fmt.Sprintf("CSV parsing error: %v", err))
		}
	case ".xlsx", ".xls":
		table, err = decode.Spreadsheet(r, filename)
		if err != nil {
			log.Warn("spreadsheet decode failed", "file", filename, "error", err)
			return invalidResult(fmt.Sprintf("XLSX parsing error: %v", err))
		}
		resolve = decode.ExcelDate
	default:
		return invalidResult(errUnsupportedFormat)
	}

	if len(table.Rows) == 0 {
		return invalidResult(errNoData)
	}

	var result *ImportResult
	if isMatrixLayout(table.Headers) {
		year, month := imp.defaultPeriod()
		result = expandMatrix(table, year, month)
	} else {
		result = extractColumns(table, resolve)
	}

	log.Info("import processed",
		"file", filename,
		"valid", result.IsValid,
		"records", len(result.Records),
		"errors", len(result.Errors),
	)
	return result
}

func (imp Importer) defaultPeriod() (int, int) {
	year, month := imp.DefaultYear, imp.DefaultMonth
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, month
}
