package repositories

import "fmt"

// QueryParam selects what a generalized query returns, or how an update
// combines values with existing columns. It is defined once and shared by
// every caller so mode comparisons are plain equality.
type QueryParam int

const (
	// GetFirst returns the first matching row, or nil when none match.
	GetFirst QueryParam = iota + 1
	// GetAll returns every matching row.
	GetAll
	// CountRows returns the cardinality of the matching set.
	CountRows

	// UpdateSet overwrites numeric user fields with the supplied values.
	UpdateSet
	// UpdateAdd adds the supplied values to the current numeric user fields.
	UpdateAdd
)

func (p QueryParam) String() string {
	switch p {
	case GetFirst:
		return "first"
	case GetAll:
		return "all"
	case CountRows:
		return "count"
	case UpdateSet:
		return "set"
	case UpdateAdd:
		return "add"
	default:
		return fmt.Sprintf("QueryParam(%d)", int(p))
	}
}
