// Package queries contains read-only operations against the database.
// Implements the query side of the CQRS pattern: handlers bypass the domain
// aggregates and read projections straight from SQL for performance, and
// responses are plain read models rather than aggregates.
package queries

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

const (
	// DefaultPageNumber is used when the caller supplies no page number.
	DefaultPageNumber = 1

	// DefaultPageLimit is used when the caller supplies no page size.
	DefaultPageLimit = 10

	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 100
)

// Page is a validated 1-indexed pagination window.
type Page struct {
	number int
	limit  int
}

// NewPage creates a pagination window. Zero values fall back to the
// defaults; a negative page number or a limit outside [1, MaxPageLimit]
// is rejected.
func NewPage(number, limit int) (Page, error) {
	if number == 0 {
		number = DefaultPageNumber
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	if number < 1 {
		return Page{}, errs.NewValueIsInvalidErrorWithCause(
			"page",
			fmt.Errorf("%d is not a positive page number", number),
		)
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}

	return Page{number: number, limit: limit}, nil
}

// Number returns the 1-indexed page number.
func (p Page) Number() int {
	return p.number
}

// Limit returns the page size.
func (p Page) Limit() int {
	return p.limit
}

// Offset returns the number of rows to skip for this window.
func (p Page) Offset() int {
	return (p.number - 1) * p.limit
}

// PageMeta describes the position of a returned window within the full
// result set.
type PageMeta struct {
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewPageMeta computes the window metadata for the given page and total
// row count.
func NewPageMeta(page Page, total int64) PageMeta {
	totalPages := int((total + int64(page.Limit()) - 1) / int64(page.Limit()))

	return PageMeta{
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page.Number() < totalPages,
		HasPrev:    page.Number() > 1,
	}
}
