// Package pagination computes page state and navigation links for list endpoints.
package pagination

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid pagination argument")
	ErrPageOutOfRange  = errors.New("page out of range")
)

// PageState is the navigation state of one page of a collection.
type PageState struct {
	CurrentPage int
	PageSize    int
	TotalItems  int64
	TotalPages  int
	HasNext     bool
	HasPrev     bool
}

// Paginate computes the PageState for requestedPage of a collection holding
// totalItems items split into pages of pageSize.
//
// Page 1 of an empty collection is valid and has zero total pages.
func Paginate(totalItems int64, pageSize, requestedPage int) (PageState, error) {
	if pageSize <= 0 {
		return PageState{}, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	if requestedPage < 1 {
		return PageState{}, fmt.Errorf("%w: page must be a positive integer, got %d", ErrInvalidArgument, requestedPage)
	}
	if totalItems < 0 {
		return PageState{}, fmt.Errorf("%w: total items must not be negative, got %d", ErrInvalidArgument, totalItems)
	}

	totalPages := CalculateTotalPages(totalItems, pageSize)
	if requestedPage > max(1, totalPages) {
		return PageState{}, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, requestedPage, totalPages)
	}

	return PageState{
		CurrentPage: requestedPage,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     totalPages > 0 && requestedPage < totalPages,
		HasPrev:     totalPages > 0 && requestedPage > 1,
	}, nil
}

// CalculateTotalPages returns ceil(total / limit), or 0 for an empty collection.
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Offset is the number of items preceding the current page.
func (s PageState) Offset() int {
	return (s.CurrentPage - 1) * s.PageSize
}

// LastPage is the page the "last" link points at. An empty collection still
// has a first page, so LastPage never drops below 1.
func (s PageState) LastPage() int {
	return max(1, s.TotalPages)
}

func (s PageState) NextPage() int {
	return s.CurrentPage + 1
}

func (s PageState) PrevPage() int {
	return s.CurrentPage - 1
}
