// Package search implements the in-window find feature: case-insensitive
// substring matching over the presentation rows.
package search

import "strings"

// Result describes which rows matched a query.
type Result struct {
	// Marks has one element per input row; true means the row matched.
	Marks []bool
	// First is the index of the first matching row, or -1 if none matched.
	// The presentation layer scrolls this row into view.
	First int
}

// Run matches query against rows. Matching is case-insensitive substring
// containment; the empty query matches every row (the empty string is
// contained in all strings).
func Run(rows []string, query string) Result {
	q := strings.ToLower(query)
	res := Result{
		Marks: make([]bool, len(rows)),
		First: -1,
	}
	for i, row := range rows {
		if !strings.Contains(strings.ToLower(row), q) {
			continue
		}
		res.Marks[i] = true
		if res.First < 0 {
			res.First = i
		}
	}
	return res
}
