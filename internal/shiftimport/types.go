// Package shiftimport implements the shift sheet import engine: it infers
// which of two sheet layouts an upload uses, extracts uniform shift records,
// validates them, and reports structured errors for human review before
// anything is committed elsewhere.
//
// Two layouts are recognized. A column sheet has one row per shift with
// labeled columns (date, employee, hours, tips, bonus; English or Czech
// headers). A matrix sheet is an employee-by-day-of-month grid where a
// populated cell means "worked that day".
package shiftimport

import "time"

// ShiftRecord is the normalized unit of output.
type ShiftRecord struct {
	// Date is an ISO calendar date, YYYY-MM-DD.
	Date string `json:"date"`
	// Employee is the trimmed display name.
	Employee string `json:"employee"`
	// Hours is the shift duration; a shift must be longer than zero.
	Hours float64 `json:"hours"`
	// Tips and Bonus are CZK amounts, zero when the sheet carries none.
	Tips  float64 `json:"tips"`
	Bonus float64 `json:"bonus"`
}

// ImportResult is the engine's sole output contract. Malformed input never
// surfaces as a Go error; IsValid=false plus Errors is the failure signal.
type ImportResult struct {
	// IsValid is true iff no errors were produced.
	IsValid bool `json:"isValid"`
	// Records holds the accepted shifts in sheet order. Rejected rows are
	// excluded entirely, not flagged.
	Records []ShiftRecord `json:"records"`
	// Errors holds one human-readable message per rejected row or
	// file-level failure. Row numbers are 1-based over the data rows.
	Errors []string `json:"errors"`
	// UnknownEmployees lists every distinct employee name across accepted
	// records, deduplicated in first-seen order. The engine has no roster;
	// callers diff this against their own.
	UnknownEmployees []string `json:"unknownEmployees"`
}

// DateResolver converts a spreadsheet-internal numeric date code to a
// calendar date. Wired by the pipeline for spreadsheet uploads only.
type DateResolver func(code float64) (time.Time, error)

func newResult() *ImportResult {
	return &ImportResult{
		Records:          []ShiftRecord{},
		Errors:           []string{},
		UnknownEmployees: []string{},
	}
}

func invalidResult(msgs ...string) *ImportResult {
	r := newResult()
	r.Errors = append(r.Errors, msgs...)
	return r
}

// nameTracker records distinct employee names in first-seen order.
type nameTracker struct {
	seen  map[string]bool
	names []string
}

func newNameTracker() *nameTracker {
	return &nameTracker{seen: make(map[string]bool), names: []string{}}
}

func (t *nameTracker) add(name string) {
	if t.seen[name] {
		return
	}
	t.seen[name] = true
	t.names = append(t.names, name)
}

// cellAt returns the cell at the given column, or nil when the row is too
// short or the column is unbound.
func cellAt(row []any, col int) any {
	if col < 0 || col >= len(row) {
		return nil
	}
	return row[col]
}
