package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var weekRegex = regexp.MustCompile(`(?i)^\s*(?:week\s*)?(\d+)\s*$`)

// NormalizeWeek turns "week 4", "WEEK4" or "4" into the canonical
// "WEEK 4" label used as the sheet name and the relational key.
// It returns "" if the input doesn't contain a week number.
func NormalizeWeek(s string) string {
	m := weekRegex.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return ""
	}
	return fmt.Sprintf("WEEK %d", n)
}

// WeekNumber extracts the number from a canonical week label.
// Returns 0 for anything that isn't a week label.
func WeekNumber(label string) int {
	m := weekRegex.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
