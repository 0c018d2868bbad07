package workbook

import (
	"strconv"
	"strings"
)

// Cell parsing contract: blank cells, spreadsheet error sentinels
// ("#DIV/0!", "#N/A", "#VALUE!", ...) and anything non-numeric parse to nil.
// Everything else is coerced best effort, tolerating thousands separators
// and percent signs. Sync code never raises on a bad cell.

func isErrorSentinel(s string) bool {
	return strings.HasPrefix(s, "#")
}

// CellString trims a cell; error sentinels become the empty string.
func CellString(s string) string {
	s = strings.TrimSpace(s)
	if isErrorSentinel(s) {
		return ""
	}
	return s
}

// CellInt parses a cell as an integer, truncating a decimal value.
func CellInt(s string) *int {
	f := CellFloat(s)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// CellFloat parses a cell as a number.
func CellFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || isErrorSentinel(s) {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Cell returns the trimmed value at column index i, or "" when the row is
// shorter than that. Sheet APIs drop trailing empty cells from rows.
func Cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return CellString(row[i])
}
