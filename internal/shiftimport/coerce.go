package shiftimport

// coerce.go holds the value parsing primitives for heterogeneous sheet cells.
//
// Hand-maintained shift sheets carry stray units ("8h", "150 Kč"), thousands
// separators and whitespace, so amount parsing is deliberately lenient: strip
// everything that cannot be part of a number, then parse what is left.

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order for textual date cells. ISO first, then the
// US slash forms and the day-first dotted forms Czech sheets use.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"1/2/2006",
	"01/02/2006",
	"2.1.2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseAmount reads a currency or hour cell. Numeric cells pass through
// unchanged. Text is stripped down to digits, decimal points and a leading
// minus sign before parsing; anything unparseable yields 0.
func ParseAmount(cell any) float64 {
	switch v := cell.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}

	var b strings.Builder
	for _, r := range cellText(cell) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCalendarDate normalizes a date cell to YYYY-MM-DD. Numeric cells are
// spreadsheet date serials and go through the resolver; text goes through
// the layout list. Returns "" when the cell does not hold a valid date.
// Date-only semantics: no timezone adjustment is applied.
func ParseCalendarDate(cell any, resolve DateResolver) string {
	if code, ok := cell.(float64); ok && resolve != nil {
		// Serial 0 is an empty date cell, not day zero of the epoch.
		if code <= 0 {
			return ""
		}
		t, err := resolve(code)
		if err != nil {
			return ""
		}
		return t.Format("2006-01-02")
	}

	s := strings.TrimSpace(cellText(cell))
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// DayNumber reads the day-of-month prefix from a matrix column header.
// Headers like "1", "1." and "1.7." all resolve to day 1. The second return
// is false when the header does not begin with a digit.
func DayNumber(header string) (int, bool) {
	s := strings.TrimSpace(header)
	i := 0
	for i < len(s) && i < 2 && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// leadingFloat parses the longest numeric prefix of s: an optional sign,
// digits and at most one decimal point. ok is false when s carries no
// leading digits at all.
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	dot := false
scan:
	for i < len(s) {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			break scan
		}
		i++
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cellText coerces an untyped cell to its textual form. Numeric cells print
// without a trailing ".0" so "8" and 8.0 read the same.
func cellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
