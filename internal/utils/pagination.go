package utils

import "errors"

// ErrInvalidPage reports a page whose offset lies beyond the total row
// count; controllers map it to a client error.
var ErrInvalidPage = errors.New("not a valid page number")

// Window is the row range a page covers: rows [Offset, Limit).
type Window struct {
	Offset int
	Limit  int
}

// Paginate translates (page, perPage, total) into a row window.
//
// Offset is perPage*(page-1) and Limit is perPage*page clamped to total.
// A page whose offset exceeds total is invalid. Callers skip pagination
// entirely when total is zero and present an empty window instead.
func Paginate(page, perPage, total int) (Window, error) {
	window := Window{
		Offset: perPage * (page - 1),
		Limit:  perPage * page,
	}

	if window.Offset > total {
		return Window{}, ErrInvalidPage
	}
	if window.Limit > total {
		window.Limit = total
	}

	return window, nil
}

// NumPages is the page count for a total at the effective per-page size,
// rounding up.
func NumPages(total, perPage int) int {
	numPages := total / perPage
	if numPages*perPage < total {
		numPages++
	}
	return numPages
}
