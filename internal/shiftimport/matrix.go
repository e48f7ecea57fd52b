package shiftimport

// matrix.go is the matrix-format branch: an employee-by-day grid expanded
// into one record per populated cell. The policy here is best-effort
// extraction from messy hand-maintained sheets, so malformed cells are
// skipped silently instead of rejected. The column branch is the strict one.

import (
	"fmt"
	"strings"

	"github.com/restaura/shiftsheet/internal/decode"
)

// defaultShiftHours is assigned when a grid cell carries a presence marker
// such as "x" or "p" instead of an hour count.
const defaultShiftHours = 8

// expandMatrix converts a grid table into shift records. Matrix sheets are
// month-scoped and carry no year or month of their own; both come from the
// caller. Composed dates are not range-checked against the month length.
func expandMatrix(table *decode.Table, year, month int) *ImportResult {
	result := newResult()
	tracker := newNameTracker()
	dayHeaders := table.Headers[1:]

	for _, row := range table.Rows {
		employee := strings.TrimSpace(cellText(cellAt(row, 0)))
		if employee == "" {
			continue
		}

		for col, header := range dayHeaders {
			cell := cellAt(row, col+1)
			if skipMatrixCell(cell) {
				continue
			}
			day, ok := DayNumber(header)
			if !ok {
				continue
			}

			result.Records = append(result.Records, ShiftRecord{
				Date:     fmt.Sprintf("%04d-%02d-%02d", year, month, day),
				Employee: employee,
				Hours:    matrixHours(cell),
			})
			tracker.add(employee)
		}
	}

	result.UnknownEmployees = tracker.names
	result.IsValid = len(result.Errors) == 0
	return result
}

// skipMatrixCell reports whether a grid cell means "not scheduled": missing,
// the empty string, or the spreadsheet-typed number 0. A whitespace-only
// cell counts as populated, and a textual "0" (as CSV delivers every cell)
// is not a skip marker.
func skipMatrixCell(cell any) bool {
	switch v := cell.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	}
	return false
}

// matrixHours interprets a populated grid cell: numeric cells and text with
// a numeric prefix ("4h" reads as 4) are hour counts, any other marker
// means a default shift.
func matrixHours(cell any) float64 {
	switch v := cell.(type) {
	case float64:
		return v
	case string:
		if n, ok := leadingFloat(v); ok {
			return n
		}
	}
	return defaultShiftHours
}
