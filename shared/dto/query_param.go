package dto

import "fmt"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries ordering and an optional row cap for list queries.
// Limit zero means no cap.
type QueryParams struct {
	SortBy  string
	SortDir string
	Limit   int
}

// OrderClause renders the ORDER BY clause, or an empty string when unsorted.
func (q QueryParams) OrderClause() string {
	if q.SortBy == "" {
		return ""
	}

	dir := q.SortDir
	if dir != SortDirAsc && dir != SortDirDesc {
		dir = SortDirAsc
	}

	return fmt.Sprintf("ORDER BY %s %s", q.SortBy, dir)
}
