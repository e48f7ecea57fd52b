package shiftimport

// isMatrixLayout reports whether a header row describes an employee-by-day
// grid. The first header is reserved for the employee name; the next three
// must read as days 1, 2, 3 in order. Only those three candidates are
// inspected, so ragged trailing columns (a February sheet with 28 day
// columns) do not break detection. Any mismatch classifies the sheet as
// column format.
func isMatrixLayout(headers []string) bool {
	if len(headers) < 3 {
		return false
	}

	candidates := headers[1:]
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	for i, h := range candidates {
		n, ok := DayNumber(h)
		if !ok || n != i+1 {
			return false
		}
	}
	return true
}
