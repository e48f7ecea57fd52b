package shiftimport

// columns.go is the column-format branch: heuristic header resolution, row
// extraction and per-row validation. Unlike the matrix branch, this branch
// rejects malformed rows explicitly, one error per row.

import (
	"fmt"
	"strings"

	"github.com/restaura/shiftsheet/internal/decode"
)

// fieldPatterns binds each record field to the header substrings that
// resolve it, covering English and Czech sheet vocabularies. Matching is
// case-insensitive substring matching, and positional: the first header
// containing any pattern wins. Kept as a table so the heuristic stays
// independently testable and extensible.
var fieldPatterns = []struct {
	field    string
	patterns []string
}{
	{"date", []string{"date", "datum", "day", "den"}},
	{"employee", []string{"employee", "zamestnanec", "name", "jmeno", "emp"}},
	{"hours", []string{"hours", "hodiny", "time", "cas"}},
	{"tips", []string{"tips", "spropitne", "tip"}},
	{"bonus", []string{"bonus", "premia", "odmen"}},
}

var requiredFields = []string{"date", "employee", "hours"}

// columnMap binds record fields to header positions; -1 means unbound.
type columnMap map[string]int

// mapColumns resolves the field bindings for a column sheet and returns the
// required fields that could not be bound.
func mapColumns(headers []string) (columnMap, []string) {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(h)
	}

	cm := make(columnMap, len(fieldPatterns))
	for _, fp := range fieldPatterns {
		cm[fp.field] = -1
		for i, h := range lower {
			if containsAny(h, fp.patterns) {
				cm[fp.field] = i
				break
			}
		}
	}

	var missing []string
	for _, f := range requiredFields {
		if cm[f] == -1 {
			missing = append(missing, f)
		}
	}
	return cm, missing
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// extractColumns maps every data row to a candidate record and validates it.
// A missing required column fails the whole file before any row is touched.
func extractColumns(table *decode.Table, resolve DateResolver) *ImportResult {
	result := newResult()

	cm, missing := mapColumns(table.Headers)
	if len(missing) > 0 {
		result.Errors = append(result.Errors, "Missing required columns: "+strings.Join(missing, ", "))
		return result
	}

	tracker := newNameTracker()
	for i, row := range table.Rows {
		rec := ShiftRecord{
			Date:     ParseCalendarDate(cellAt(row, cm["date"]), resolve),
			Employee: strings.TrimSpace(cellText(cellAt(row, cm["employee"]))),
			Hours:    ParseAmount(cellAt(row, cm["hours"])),
			Tips:     ParseAmount(cellAt(row, cm["tips"])),
			Bonus:    ParseAmount(cellAt(row, cm["bonus"])),
		}

		if msg := validateRecord(rec); msg != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, msg))
			continue
		}

		result.Records = append(result.Records, rec)
		tracker.add(rec.Employee)
	}

	result.UnknownEmployees = tracker.names
	result.IsValid = len(result.Errors) == 0
	return result
}

// validateRecord applies the structural checks in fixed order and returns
// the first failure only: date, then employee, then hours.
func validateRecord(rec ShiftRecord) string {
	if rec.Date == "" {
		return "Invalid date format"
	}
	if rec.Employee == "" {
		return "Missing employee name"
	}
	if rec.Hours <= 0 {
		return "Invalid hours value"
	}
	return ""
}
