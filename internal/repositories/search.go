package repositories

// SearchParams describes a generalized filtered query.
type SearchParams struct {
	// Criteria is the store-evaluated filter; nil matches everything.
	Criteria Criteria
	// OrderBy is a column expression, e.g. "id" or "id DESC".
	OrderBy string
	// Offset skips rows; must be non-negative.
	Offset int
	// Limit caps returned rows; nil means unlimited, otherwise it must be
	// strictly positive.
	Limit *int
	// Projection restricts the selected columns, used for id-only scans.
	Projection []string
	// Mode selects the shape of the result: GetFirst, GetAll or CountRows.
	Mode QueryParam
}

// SearchResult carries whichever result shape the query mode produced.
type SearchResult[E any] struct {
	// First is the first matching row for GetFirst, nil when none matched.
	First *E
	// All is the full matching set for GetAll.
	All []*E
	// Count is the cardinality for CountRows.
	Count int64
}

// Limit is a convenience for building *int limits in place.
func Limit(n int) *int {
	return &n
}
